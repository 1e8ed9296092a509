package glfwhost

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"ambusnake/internal/platform"
)

func initWindow(conf platform.Conf) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Decorated, glfw.True)

	window, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if conf.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	if len(conf.Icons) > 0 {
		window.SetIcon(conf.Icons)
	}
	return window, nil
}

func translateKey(k glfw.Key) platform.Key {
	switch k {
	case glfw.KeyUp:
		return platform.KeyUp
	case glfw.KeyDown:
		return platform.KeyDown
	case glfw.KeyLeft:
		return platform.KeyLeft
	case glfw.KeyRight:
		return platform.KeyRight
	case glfw.KeyP:
		return platform.KeyP
	case glfw.KeyEscape:
		return platform.KeyEscape
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return platform.KeyEnter
	case glfw.KeySpace:
		return platform.KeySpace
	default:
		return platform.KeyUnknown
	}
}
