package bramble

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Key    string  `yaml:"key,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Button string  `yaml:"button,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// inputScript is the top-level structure of a script file.
type inputScript struct {
	Steps []scriptStep `yaml:"steps"`
}

// InputScript replays scripted input into a World, one step per frame, for
// automated runs. Scripts are YAML; JSON is accepted as well.
//
//	steps:
//	  - {action: key, key: Space}
//	  - {action: wait, frames: 10}
//	  - {action: click, x: 320, y: 240}
//	  - {action: drag, x: 10, y: 10, toX: 200, toY: 10, frames: 8}
//	  - {action: reset}
type InputScript struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	queue     [][]InputEvent // one entry per frame
	done      bool
}

// LoadInputScript parses a script.
func LoadInputScript(data []byte) (*InputScript, error) {
	var script inputScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "key", "click", "drag", "wait", "reset":
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
		if _, err := parseButton(st.Button); err != nil {
			return nil, fmt.Errorf("parse input script: step %d: %w", i, err)
		}
	}
	return &InputScript{steps: script.Steps}, nil
}

// Done reports whether every step has been executed and delivered.
func (s *InputScript) Done() bool {
	return s.done
}

// step runs once per World.Step, before the input buffers swap.
func (s *InputScript) step(w *World) {
	if s.done {
		return
	}
	if len(s.queue) > 0 {
		for _, e := range s.queue[0] {
			w.PushEvent(e)
		}
		s.queue = s.queue[1:]
		s.checkDone()
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		s.checkDone()
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++
	button, _ := parseButton(st.Button)

	switch st.Action {
	case "key":
		w.PushEvent(InputEvent{Type: InputKeyDown, Key: st.Key})
		s.queue = append(s.queue, []InputEvent{{Type: InputKeyUp, Key: st.Key}})
	case "click":
		w.PushEvent(InputEvent{Type: InputPointerDown, X: st.X, Y: st.Y, Button: button})
		s.queue = append(s.queue, []InputEvent{{Type: InputPointerUp, X: st.X, Y: st.Y, Button: button}})
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		w.PushEvent(InputEvent{Type: InputPointerDown, X: st.X, Y: st.Y, Button: button})
		px, py := st.X, st.Y
		steps := frames - 2
		for i := 1; i <= steps; i++ {
			t := float64(i) / float64(steps+1)
			x := st.X + (st.ToX-st.X)*t
			y := st.Y + (st.ToY-st.Y)*t
			s.queue = append(s.queue, []InputEvent{{
				Type: InputPointerMove, X: x, Y: y, DeltaX: x - px, DeltaY: y - py, Button: button,
			}})
			px, py = x, y
		}
		s.queue = append(s.queue, []InputEvent{{Type: InputPointerUp, X: st.ToX, Y: st.ToY, Button: button}})
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "reset":
		w.RequestReset()
	}
	s.checkDone()
}

func (s *InputScript) checkDone() {
	if s.cursor >= len(s.steps) && s.waitCount == 0 && len(s.queue) == 0 {
		s.done = true
	}
}

func parseButton(name string) (MouseButton, error) {
	switch name {
	case "", "left":
		return MouseButtonLeft, nil
	case "right":
		return MouseButtonRight, nil
	case "middle":
		return MouseButtonMiddle, nil
	default:
		return 0, fmt.Errorf("unknown mouse button %q", name)
	}
}
