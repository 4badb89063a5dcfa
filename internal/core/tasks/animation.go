package tasks

import (
	"time"

	"github.com/zeusync/actorproxy/internal/core/native"
	"github.com/zeusync/actorproxy/internal/core/script"
)

// AnimationFlags are passed through to the simulation unchanged.
type AnimationFlags int

const (
	AnimationNone           AnimationFlags = 0
	AnimationLoop           AnimationFlags = 1
	AnimationStayInEndFrame AnimationFlags = 2
	AnimationUpperBodyOnly  AnimationFlags = 16
	AnimationAllowRotation  AnimationFlags = 32
	AnimationCancelable     AnimationFlags = 120
)

// Animation describes one clip to play.
type Animation struct {
	Dict     string
	Name     string
	BlendIn  float64
	BlendOut float64
	Duration time.Duration
	Flags    AnimationFlags
}

func (a Animation) withDefaults() Animation {
	if a.BlendIn == 0 {
		a.BlendIn = 8
	}
	if a.BlendOut == 0 {
		a.BlendOut = -8
	}
	if a.Duration == 0 {
		a.Duration = Forever
	}
	return a
}

// PlayAnimation streams the clip's dictionary and plays the clip once it has
// loaded. The returned job reports whether it played or timed out. Without a
// scheduler the clip is requested and played straight away and the job is nil.
func (t *Tasks) PlayAnimation(a Animation) *script.Job {
	a = a.withDefaults()

	wait := &script.ResourceWait{
		Request: func() { t.call(native.RequestAnimDict, native.String(a.Dict)) },
		Ready:   func() bool { return t.call(native.HasAnimDictLoaded, native.String(a.Dict)).AsBool() },
		Apply:   func() { t.play(a) },
		Timeout: t.loadTimeout,
	}

	if t.sched == nil {
		wait.Request()
		t.play(a)
		return nil
	}
	return t.sched.Spawn("anim:"+a.Dict+"/"+a.Name, wait)
}

func (t *Tasks) play(a Animation) {
	t.call(native.TaskPlayAnim, t.self(),
		native.String(a.Dict), native.String(a.Name),
		native.Float(a.BlendIn), native.Float(a.BlendOut),
		millis(a.Duration), native.Int(int(a.Flags)), native.Float(0))
}
