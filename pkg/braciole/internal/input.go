package internal

import (
	"encoding/json"
	"fmt"

	"github.com/syncly-app/braciole/pkg/braciole/constants"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

// Event is a processed input event in terms of virtual buttons.
// Pointer events (mouse, touch) are not translated; components hit-test
// raw SDL mouse events against their own layout.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
}

// InputMapping maps physical inputs to virtual buttons.
type InputMapping struct {
	Keyboard   map[sdl.Scancode]constants.VirtualButton
	Controller map[uint8]constants.VirtualButton
}

// DefaultInputMapping returns the built-in keyboard and controller bindings.
func DefaultInputMapping() InputMapping {
	return InputMapping{
		Keyboard: map[sdl.Scancode]constants.VirtualButton{
			sdl.SCANCODE_UP:       constants.VirtualButtonUp,
			sdl.SCANCODE_DOWN:     constants.VirtualButtonDown,
			sdl.SCANCODE_LEFT:     constants.VirtualButtonLeft,
			sdl.SCANCODE_RIGHT:    constants.VirtualButtonRight,
			sdl.SCANCODE_RETURN:   constants.VirtualButtonA,
			sdl.SCANCODE_ESCAPE:   constants.VirtualButtonB,
			sdl.SCANCODE_X:        constants.VirtualButtonX,
			sdl.SCANCODE_Y:        constants.VirtualButtonY,
			sdl.SCANCODE_SPACE:    constants.VirtualButtonStart,
			sdl.SCANCODE_TAB:      constants.VirtualButtonSelect,
			sdl.SCANCODE_M:        constants.VirtualButtonMenu,
			sdl.SCANCODE_PAGEUP:   constants.VirtualButtonL1,
			sdl.SCANCODE_PAGEDOWN: constants.VirtualButtonR1,
			sdl.SCANCODE_F1:       constants.VirtualButtonF1,
			sdl.SCANCODE_F2:       constants.VirtualButtonF2,
		},
		Controller: map[uint8]constants.VirtualButton{
			uint8(sdl.CONTROLLER_BUTTON_DPAD_UP):       constants.VirtualButtonUp,
			uint8(sdl.CONTROLLER_BUTTON_DPAD_DOWN):     constants.VirtualButtonDown,
			uint8(sdl.CONTROLLER_BUTTON_DPAD_LEFT):     constants.VirtualButtonLeft,
			uint8(sdl.CONTROLLER_BUTTON_DPAD_RIGHT):    constants.VirtualButtonRight,
			uint8(sdl.CONTROLLER_BUTTON_A):             constants.VirtualButtonA,
			uint8(sdl.CONTROLLER_BUTTON_B):             constants.VirtualButtonB,
			uint8(sdl.CONTROLLER_BUTTON_X):             constants.VirtualButtonX,
			uint8(sdl.CONTROLLER_BUTTON_Y):             constants.VirtualButtonY,
			uint8(sdl.CONTROLLER_BUTTON_LEFTSHOULDER):  constants.VirtualButtonL1,
			uint8(sdl.CONTROLLER_BUTTON_RIGHTSHOULDER): constants.VirtualButtonR1,
			uint8(sdl.CONTROLLER_BUTTON_START):         constants.VirtualButtonStart,
			uint8(sdl.CONTROLLER_BUTTON_BACK):          constants.VirtualButtonSelect,
			uint8(sdl.CONTROLLER_BUTTON_GUIDE):         constants.VirtualButtonMenu,
		},
	}
}

// jsonInputMapping is the on-disk format for custom mappings. Keys are SDL
// scancode / controller button names, values are VirtualButton names.
type jsonInputMapping struct {
	Keyboard   map[string]string `json:"keyboard"`
	Controller map[string]string `json:"controller"`
}

// ParseInputMapping decodes a JSON mapping. Entries not present fall back to
// the default mapping.
func ParseInputMapping(data []byte) (InputMapping, error) {
	var jm jsonInputMapping
	if err := json.Unmarshal(data, &jm); err != nil {
		return InputMapping{}, fmt.Errorf("parse input mapping: %w", err)
	}

	mapping := DefaultInputMapping()

	for keyName, buttonName := range jm.Keyboard {
		scancode := sdl.GetScancodeFromName(keyName)
		if scancode == sdl.SCANCODE_UNKNOWN {
			return InputMapping{}, fmt.Errorf("parse input mapping: unknown key %q", keyName)
		}
		mapping.Keyboard[scancode] = constants.ButtonByName(buttonName)
	}

	for ctrlName, buttonName := range jm.Controller {
		button := sdl.GameControllerGetButtonFromString(ctrlName)
		if button == sdl.CONTROLLER_BUTTON_INVALID {
			return InputMapping{}, fmt.Errorf("parse input mapping: unknown controller button %q", ctrlName)
		}
		mapping.Controller[uint8(button)] = constants.ButtonByName(buttonName)
	}

	return mapping, nil
}

const axisThreshold = 16384

// InputProcessor translates raw SDL events into virtual button events.
type InputProcessor struct {
	mapping     InputMapping
	controllers map[sdl.JoystickID]*sdl.GameController
	axisDirs    map[uint8]constants.VirtualButton
	lastHatDir  constants.VirtualButton
}

var (
	inputProcessor  *InputProcessor
	pendingMapping  *InputMapping
	flipFaceButtons = atomic.NewBool(false)
)

// SetFlipFaceButtons enables direct face button mapping (A=A, B=B) instead
// of the default Nintendo-style swap.
func SetFlipFaceButtons(flip bool) {
	flipFaceButtons.Store(flip)
}

// SetInputMappingBytes loads a custom input mapping from JSON bytes.
// May be called before or after InitInputProcessor.
func SetInputMappingBytes(data []byte) {
	mapping, err := ParseInputMapping(data)
	if err != nil {
		GetInternalLogger().Error("Ignoring invalid input mapping", "error", err)
		return
	}

	if inputProcessor != nil {
		inputProcessor.mapping = mapping
		return
	}
	pendingMapping = &mapping
}

func InitInputProcessor() {
	inputProcessor = &InputProcessor{
		mapping:     DefaultInputMapping(),
		controllers: make(map[sdl.JoystickID]*sdl.GameController),
		axisDirs:    make(map[uint8]constants.VirtualButton),
	}

	if pendingMapping != nil {
		inputProcessor.mapping = *pendingMapping
		pendingMapping = nil
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		inputProcessor.openController(i)
	}
}

func GetInputProcessor() *InputProcessor {
	return inputProcessor
}

func (p *InputProcessor) openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}

	controller := sdl.GameControllerOpen(index)
	if controller == nil {
		GetInternalLogger().Warn("Failed to open game controller", "index", index)
		return
	}

	id := controller.Joystick().InstanceID()
	p.controllers[id] = controller
	GetInternalLogger().Debug("Opened game controller", "index", index, "name", controller.Name())
}

func (p *InputProcessor) closeController(id sdl.JoystickID) {
	if controller, ok := p.controllers[id]; ok {
		controller.Close()
		delete(p.controllers, id)
	}
}

// CloseAllControllers releases all opened game controllers.
func CloseAllControllers() {
	if inputProcessor == nil {
		return
	}
	for id := range inputProcessor.controllers {
		inputProcessor.closeController(id)
	}
}

// faceButton applies the Nintendo-style swap unless direct mapping is enabled.
func faceButton(button constants.VirtualButton) constants.VirtualButton {
	if flipFaceButtons.Load() {
		return button
	}

	switch button {
	case constants.VirtualButtonA:
		return constants.VirtualButtonB
	case constants.VirtualButtonB:
		return constants.VirtualButtonA
	case constants.VirtualButtonX:
		return constants.VirtualButtonY
	case constants.VirtualButtonY:
		return constants.VirtualButtonX
	}
	return button
}

// ProcessSDLEvent translates an SDL event into a virtual button event.
// Returns nil for events that do not map to a virtual button.
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		button, ok := p.mapping.Keyboard[e.Keysym.Scancode]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.State == sdl.PRESSED}

	case *sdl.ControllerButtonEvent:
		button, ok := p.mapping.Controller[e.Button]
		if !ok {
			return nil
		}
		return &Event{Button: faceButton(button), Pressed: e.State == sdl.PRESSED}

	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			p.openController(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			p.closeController(sdl.JoystickID(e.Which))
		}
		return nil

	case *sdl.ControllerAxisEvent:
		return p.processAxis(e)

	case *sdl.JoyHatEvent:
		return p.processHat(e)
	}

	return nil
}

func (p *InputProcessor) processAxis(e *sdl.ControllerAxisEvent) *Event {
	var negative, positive constants.VirtualButton

	switch e.Axis {
	case uint8(sdl.CONTROLLER_AXIS_LEFTX):
		negative, positive = constants.VirtualButtonLeft, constants.VirtualButtonRight
	case uint8(sdl.CONTROLLER_AXIS_LEFTY):
		negative, positive = constants.VirtualButtonUp, constants.VirtualButtonDown
	default:
		return nil
	}

	current := constants.VirtualButtonUnassigned
	if e.Value <= -axisThreshold {
		current = negative
	} else if e.Value >= axisThreshold {
		current = positive
	}

	previous := p.axisDirs[e.Axis]
	if current == previous {
		return nil
	}
	p.axisDirs[e.Axis] = current

	if current == constants.VirtualButtonUnassigned {
		return &Event{Button: previous, Pressed: false}
	}
	return &Event{Button: current, Pressed: true}
}

func (p *InputProcessor) processHat(e *sdl.JoyHatEvent) *Event {
	current := constants.VirtualButtonUnassigned
	switch {
	case e.Value&sdl.HAT_UP != 0:
		current = constants.VirtualButtonUp
	case e.Value&sdl.HAT_DOWN != 0:
		current = constants.VirtualButtonDown
	case e.Value&sdl.HAT_LEFT != 0:
		current = constants.VirtualButtonLeft
	case e.Value&sdl.HAT_RIGHT != 0:
		current = constants.VirtualButtonRight
	}

	previous := p.lastHatDir
	if current == previous {
		return nil
	}
	p.lastHatDir = current

	if current == constants.VirtualButtonUnassigned {
		return &Event{Button: previous, Pressed: false}
	}
	return &Event{Button: current, Pressed: true}
}
