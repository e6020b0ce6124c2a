package config

import (
	"github.com/The-PhoenixOS/frameworks-native/display"
	"github.com/matryer/is"
	"path/filepath"
	"testing"
)

const example = `
[agent]
grpc_addr = 127.0.0.1:9000
ws_addr =
log_level = debug

[display]
id = 2
width = 1920
height = 1080
rotation = 270

[device.7]
name = precision touchpad
x_min = 0
x_max = 2000

[device.3]
y_min = -250
y_max = 250
`

func TestParse(t *testing.T) {
	is := is.New(t)

	cfg, err := Parse([]byte(example))
	is.NoErr(err)

	is.Equal(cfg.Agent.GrpcAddr, "127.0.0.1:9000")
	is.Equal(cfg.Agent.WsAddr, "")
	is.Equal(cfg.Agent.LogLevel, "debug")
	is.Equal(cfg.Agent.RecordPath, "")
	is.Equal(cfg.Agent.HubCapacity, DefaultHubCapacity)

	is.Equal(cfg.Display.ID, int32(2))
	is.Equal(cfg.Display.Width, 1920)
	is.Equal(cfg.Display.Height, 1080)
	is.Equal(cfg.Display.Rotation, display.Rotation270)

	is.Equal(len(cfg.Devices), 2)
	is.Equal(cfg.Devices[0].ID, int32(3))
	is.Equal(cfg.Devices[0].Name, "touchpad-3")
	is.Equal(cfg.Devices[0].XAxisRange(), float32(1000))
	is.Equal(cfg.Devices[0].YAxisRange(), float32(500))

	d, ok := cfg.Device(7)
	is.True(ok)
	is.Equal(d.Name, "precision touchpad")
	is.Equal(d.XAxisRange(), float32(2000))
	is.Equal(d.YAxisRange(), float32(1000))

	_, ok = cfg.Device(1)
	is.True(!ok)
}

func TestParse_Defaults(t *testing.T) {
	is := is.New(t)

	cfg, err := Parse([]byte(""))
	is.NoErr(err)
	is.Equal(cfg, Default())
}

func TestParse_Invalid(t *testing.T) {
	is := is.New(t)

	_, err := Parse([]byte("[display]\nrotation = 45\n"))
	is.True(err != nil)

	_, err = Parse([]byte("[device.abc]\n"))
	is.True(err != nil)

	_, err = Parse([]byte("[device.1]\nx_min = 10\nx_max = 10\n"))
	is.True(err != nil)
}

func TestConfig_SaveTo(t *testing.T) {
	is := is.New(t)

	cfg, err := Parse([]byte(example))
	is.NoErr(err)

	path := filepath.Join(t.TempDir(), "agent.ini")
	is.NoErr(cfg.SaveTo(path))

	loaded, err := Load(path)
	is.NoErr(err)
	is.Equal(loaded, cfg)
}
