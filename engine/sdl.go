//go:build sdl

package engine

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

// Termination stops Run without an error when returned from Game.Update.
var Termination = errors.New("engine: regular termination")

type Game interface {
	Update(kb *Keyboard) error
	Draw(screen *Image)
}

type Window struct {
	Title         string
	Width, Height int
	Fullscreen    bool
	VSync         bool
}

// Engine presents an Image frame buffer in an SDL window through a
// streaming texture.
type Engine struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	screen   *Image
	keyboard *Keyboard
	vsync    bool
}

func NewEngine(w Window) (*Engine, error) {
	if err := sdl.Init(uint32(sdl.INIT_VIDEO)); err != nil {
		return nil, fmt.Errorf("initialising sdl: %w", err)
	}

	flags := uint32(sdl.WINDOW_SHOWN)
	if w.Fullscreen {
		flags |= uint32(sdl.WINDOW_FULLSCREEN_DESKTOP)
	}
	window, err := sdl.CreateWindow(w.Title, int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(w.Width), int32(w.Height), flags)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("creating window: %w", err)
	}

	rflags := uint32(sdl.RENDERER_ACCELERATED)
	if w.VSync {
		rflags |= uint32(sdl.RENDERER_PRESENTVSYNC)
	}
	renderer, err := sdl.CreateRenderer(window, -1, rflags)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	// ABGR8888 is R, G, B, A in memory on little-endian machines
	texture, err := renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), int(sdl.TEXTUREACCESS_STREAMING),
		int32(w.Width), int32(w.Height))
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("creating frame texture: %w", err)
	}

	return &Engine{
		window:   window,
		renderer: renderer,
		texture:  texture,
		screen:   NewImage(w.Width, w.Height),
		keyboard: newKeyboard(),
		vsync:    w.VSync,
	}, nil
}

// Run drives game until the window is closed or Update returns an error.
// Termination is reported as a clean exit.
func (e *Engine) Run(game Game) error {
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if _, ok := event.(*sdl.QuitEvent); ok {
				return nil
			}
		}

		e.keyboard.refresh()
		if err := game.Update(e.keyboard); err != nil {
			if errors.Is(err, Termination) {
				return nil
			}
			return err
		}

		game.Draw(e.screen)
		if err := e.present(); err != nil {
			return err
		}

		if !e.vsync {
			sdl.Delay(16)
		}
	}
}

func (e *Engine) present() error {
	pix := e.screen.Pix()
	if err := e.texture.Update(nil, unsafe.Pointer(&pix[0]), e.screen.width*4); err != nil {
		return fmt.Errorf("uploading frame: %w", err)
	}
	e.renderer.Clear()
	if err := e.renderer.Copy(e.texture, nil, nil); err != nil {
		return fmt.Errorf("copying frame: %w", err)
	}
	e.renderer.Present()
	return nil
}

func (e *Engine) Destroy() {
	e.texture.Destroy()
	e.renderer.Destroy()
	e.window.Destroy()
	sdl.Quit()
}

const (
	KeyUp     sdl.Scancode = sdl.SCANCODE_UP
	KeyDown   sdl.Scancode = sdl.SCANCODE_DOWN
	KeyLeft   sdl.Scancode = sdl.SCANCODE_LEFT
	KeyRight  sdl.Scancode = sdl.SCANCODE_RIGHT
	KeyW      sdl.Scancode = sdl.SCANCODE_W
	KeyA      sdl.Scancode = sdl.SCANCODE_A
	KeyS      sdl.Scancode = sdl.SCANCODE_S
	KeyD      sdl.Scancode = sdl.SCANCODE_D
	KeyLShift sdl.Scancode = sdl.SCANCODE_LSHIFT
	KeyRShift sdl.Scancode = sdl.SCANCODE_RSHIFT
	KeyP      sdl.Scancode = sdl.SCANCODE_P
	KeyR      sdl.Scancode = sdl.SCANCODE_R
	KeyEscape sdl.Scancode = sdl.SCANCODE_ESCAPE
)

// Keyboard is the polled key state for one frame. It satisfies
// movement.Controls with arrow keys or WASD, and shift to strafe.
type Keyboard struct {
	state []uint8
	prev  []uint8
}

func newKeyboard() *Keyboard {
	return &Keyboard{}
}

func (k *Keyboard) refresh() {
	k.prev = append(k.prev[:0], k.state...)
	k.state = append(k.state[:0], sdl.GetKeyboardState()...)
}

func (k *Keyboard) IsKeyPressed(key sdl.Scancode) bool {
	return int(key) < len(k.state) && k.state[key] == 1
}

// IsKeyJustPressed reports a key that is down this frame but was up the
// frame before.
func (k *Keyboard) IsKeyJustPressed(key sdl.Scancode) bool {
	wasDown := int(key) < len(k.prev) && k.prev[key] == 1
	return k.IsKeyPressed(key) && !wasDown
}

func (k *Keyboard) Forward() bool   { return k.IsKeyPressed(KeyUp) || k.IsKeyPressed(KeyW) }
func (k *Keyboard) Back() bool      { return k.IsKeyPressed(KeyDown) || k.IsKeyPressed(KeyS) }
func (k *Keyboard) TurnLeft() bool  { return k.IsKeyPressed(KeyLeft) || k.IsKeyPressed(KeyA) }
func (k *Keyboard) TurnRight() bool { return k.IsKeyPressed(KeyRight) || k.IsKeyPressed(KeyD) }
func (k *Keyboard) Strafe() bool    { return k.IsKeyPressed(KeyLShift) || k.IsKeyPressed(KeyRShift) }
