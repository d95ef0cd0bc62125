package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"motioncat/internal/anim"
)

const (
	sequenceTag   = "sequence"
	seqMoveDur    = 500 * time.Millisecond
	seqStepGap    = 600 * time.Millisecond
	seqGrowDur    = 400 * time.Millisecond
	seqMoveOffset = 22.0
)

// sequenceView chains two steps: A slides the box right, then after a
// fixed delay B recolors and grows it. The delay is a cancellable
// scheduled step; resetting or replaying invalidates anything pending.
type sequenceView struct {
	env exampleEnv

	seq     *anim.Sequence
	offset  *anim.Tween // step A
	height  *anim.Tween // step B
	stageB  bool
	started bool
}

var _ View = (*sequenceView)(nil)

func newSequenceView(env exampleEnv) *sequenceView {
	return &sequenceView{
		env: env,
		// Step A fires immediately; step B only after A has finished
		// plus a beat.
		seq:    anim.NewSequence(time.Millisecond, env.dur(seqMoveDur)+seqStepGap),
		offset: anim.NewTween(0, 0, 0, nil),
		height: anim.NewTween(3, 3, 0, nil),
	}
}

// StageB reports whether step B's effect has been applied.
func (v *sequenceView) StageB() bool { return v.stageB }

// Init implements View.
func (v *sequenceView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *sequenceView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return v, v.replay()
		case "r":
			v.seq.Cancel()
			nv := newSequenceView(v.env)
			return nv, nv.Init()
		}
	case anim.StepMsg:
		if !v.seq.Accept(msg) {
			return v, nil
		}
		now := time.Now()
		switch msg.Index {
		case 0:
			v.offset = anim.NewTween(0, seqMoveOffset, v.env.dur(seqMoveDur), anim.EaseOut)
			v.offset.Start(now)
		case 1:
			v.stageB = true
			v.height = anim.NewTween(3, 6, v.env.dur(seqGrowDur), anim.EaseInOut)
			v.height.Start(now)
		}
		return v, tea.Batch(v.seq.Next(msg.Index), v.env.Clock.Frame(sequenceTag))
	case anim.FrameMsg:
		if msg.Tag != sequenceTag || !v.animating(msg.Time) {
			return v, nil
		}
		return v, v.env.Clock.Frame(sequenceTag)
	}
	return v, nil
}

// animating reports whether any tween is mid-flight or a step is pending.
func (v *sequenceView) animating(now time.Time) bool {
	if v.seq.Running() {
		return true
	}
	for _, tw := range []*anim.Tween{v.offset, v.height} {
		if tw.Started() && !tw.Done(now) {
			return true
		}
	}
	return false
}

// replay restarts the chain from scratch, dropping any pending step.
func (v *sequenceView) replay() tea.Cmd {
	v.seq.Cancel()
	v.started = true
	v.stageB = false
	v.offset = anim.NewTween(0, 0, 0, nil)
	v.height = anim.NewTween(3, 3, 0, nil)
	return v.seq.Start()
}

// View implements View.
func (v *sequenceView) View() string {
	now := time.Now()
	color := v.env.Theme.Palette.BoxA
	if v.stageB {
		color = v.env.Theme.Palette.BoxB
	}
	x := int(v.offset.At(now) + 0.5)
	h := int(v.height.At(now) + 0.5)
	body := placeAt(x, 0, solidBox(color, 10, h))
	stage := "press enter"
	switch {
	case v.stageB:
		stage = "step B done"
	case v.started:
		stage = "step A running, step B pending"
	}
	body += "\n\n" + v.env.Theme.Muted.Render(stage)
	return v.env.chrome("Sequence", "enter: replay chain · r: reset · esc: back", body)
}
