package internal

import (
	"os/exec"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"
)

// PowerButtonConfig configures handling of the device power key, read
// directly from the evdev input device (SDL never sees it on these CFWs).
type PowerButtonConfig struct {
	ButtonCode      uint16        // evdev key code (116 = KEY_POWER)
	DevicePath      string        // input device path, e.g. /dev/input/event1
	ShortPressMax   time.Duration // presses up to this length suspend
	CoolDownTime    time.Duration // ignore presses this close together
	SuspendScript   string        // command run on short press
	ShutdownCommand string        // command run on long press
}

// PowerButtonHandler watches the power button device until the WaitGroup is
// released (the window does this on shutdown). Short presses run the suspend
// script, long presses the shutdown command.
func PowerButtonHandler(wg *sync.WaitGroup, pbc PowerButtonConfig) {
	logger := GetInternalLogger()

	device, err := evdev.Open(pbc.DevicePath)
	if err != nil {
		logger.Error("Failed to open power button device", "path", pbc.DevicePath, "error", err)
		wg.Wait()
		return
	}

	go readPowerEvents(device, pbc)

	wg.Wait()
	device.Close()
}

func readPowerEvents(device *evdev.InputDevice, pbc PowerButtonConfig) {
	logger := GetInternalLogger()

	var pressedAt time.Time
	var lastAction time.Time

	for {
		event, err := device.ReadOne()
		if err != nil {
			// Device closed during shutdown, or unplugged
			return
		}

		if event.Type != evdev.EV_KEY || event.Code != evdev.EvCode(pbc.ButtonCode) {
			continue
		}

		switch event.Value {
		case 1:
			pressedAt = time.Now()
		case 0:
			if pressedAt.IsZero() {
				continue
			}
			held := time.Since(pressedAt)
			pressedAt = time.Time{}

			if time.Since(lastAction) < pbc.CoolDownTime {
				continue
			}
			lastAction = time.Now()

			if held <= pbc.ShortPressMax {
				logger.Info("Power button short press, suspending", "held", held)
				if err := exec.Command(pbc.SuspendScript).Run(); err != nil {
					logger.Error("Suspend script failed", "error", err)
				}
			} else {
				logger.Info("Power button long press, shutting down", "held", held)
				if err := exec.Command(pbc.ShutdownCommand).Run(); err != nil {
					logger.Error("Shutdown command failed", "error", err)
				}
			}
		}
	}
}
