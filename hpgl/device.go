package hpgl

import (
	"errors"
	"io"
	"runtime"

	"github.com/tarm/serial"
)

// Open opens the serial port of a plotter. An empty dev tries the
// usual USB serial adapters of the platform.
func Open(dev string) (io.ReadWriteCloser, error) {
	// Most HP-GL plotters with a USB adapter default to 9600 8N1 and
	// hardware handshake.
	const baudRate = 9600

	var devices []string
	if dev != "" {
		devices = append(devices, dev)
	} else {
		switch runtime.GOOS {
		case "windows":
			devices = append(devices, "COM3", "COM4")
		case "linux":
			devices = append(devices, "/dev/ttyUSB0", "/dev/ttyUSB1")
		case "darwin":
			devices = append(devices, "/dev/tty.usbserial")
		}
	}
	if len(devices) == 0 {
		return nil, errors.New("hpgl: no device specified")
	}
	var firstErr error
	for _, dev := range devices {
		c := &serial.Config{Name: dev, Baud: baudRate}
		s, err := serial.OpenPort(c)
		if err == nil {
			Logger().Info("opened plotter port", "device", dev, "baud", baudRate)
			return s, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}
