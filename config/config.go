package config

import (
	"fmt"
	"github.com/The-PhoenixOS/frameworks-native/display"
	"gopkg.in/ini.v1"
	"sort"
	"strconv"
	"strings"
)

const (
	DefaultGrpcAddr    = "0.0.0.0:8080"
	DefaultWsAddr      = "0.0.0.0:8081"
	DefaultLogLevel    = "info"
	DefaultHubCapacity = 1024

	deviceSectionPrefix = "device."
)

type Config struct {
	Agent   AgentConfig
	Display DisplayConfig
	Devices []DeviceConfig
}

type AgentConfig struct {
	// GrpcAddr is the address the gesture service listens on.
	GrpcAddr string

	// WsAddr is the address of the websocket endpoint. Empty disables it.
	WsAddr string

	LogLevel string

	// RecordPath is a trace file every received gesture is appended to. Empty disables recording.
	RecordPath string

	// HubCapacity is the number of notifications retained for slow stream subscribers.
	HubCapacity int
}

type DisplayConfig struct {
	ID       int32
	Width    int
	Height   int
	Rotation display.Rotation
}

// DeviceConfig describes a touchpad. The axis ranges scale swipe offsets.
type DeviceConfig struct {
	ID   int32
	Name string
	XMin float32
	XMax float32
	YMin float32
	YMax float32
}

func (d DeviceConfig) XAxisRange() float32 {
	return d.XMax - d.XMin
}

func (d DeviceConfig) YAxisRange() float32 {
	return d.YMax - d.YMin
}

func defaultDevice() DeviceConfig {
	return DeviceConfig{
		ID:   1,
		Name: "touchpad",
		XMin: -500,
		XMax: 500,
		YMin: -500,
		YMax: 500,
	}
}

func Default() *Config {
	return &Config{
		Agent: AgentConfig{
			GrpcAddr:    DefaultGrpcAddr,
			WsAddr:      DefaultWsAddr,
			LogLevel:    DefaultLogLevel,
			HubCapacity: DefaultHubCapacity,
		},
		Display: DisplayConfig{
			Width:    800,
			Height:   480,
			Rotation: display.Rotation0,
		},
		Devices: []DeviceConfig{defaultDevice()},
	}
}

// Load reads the configuration from an ini file. Missing keys take their default values.
func Load(path string) (*Config, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, err
	}

	return fromFile(f)
}

// Parse reads the configuration from ini formatted data.
func Parse(data []byte) (*Config, error) {
	f, err := ini.Load(data)
	if err != nil {
		return nil, err
	}

	return fromFile(f)
}

func fromFile(f *ini.File) (*Config, error) {
	cfg := Default()

	agent := f.Section("agent")
	cfg.Agent.GrpcAddr = agent.Key("grpc_addr").MustString(DefaultGrpcAddr)
	cfg.Agent.WsAddr = optionalString(agent, "ws_addr", DefaultWsAddr)
	cfg.Agent.LogLevel = agent.Key("log_level").MustString(DefaultLogLevel)
	cfg.Agent.RecordPath = agent.Key("record_path").String()
	cfg.Agent.HubCapacity = agent.Key("hub_capacity").MustInt(DefaultHubCapacity)

	disp := f.Section("display")
	cfg.Display.ID = int32(disp.Key("id").MustInt(0))
	cfg.Display.Width = disp.Key("width").MustInt(cfg.Display.Width)
	cfg.Display.Height = disp.Key("height").MustInt(cfg.Display.Height)

	if cfg.Display.Width <= 0 || cfg.Display.Height <= 0 {
		return nil, fmt.Errorf("invalid display size %dx%d", cfg.Display.Width, cfg.Display.Height)
	}

	rotation, err := display.ParseRotation(disp.Key("rotation").MustInt(0))
	if err != nil {
		return nil, err
	}

	cfg.Display.Rotation = rotation

	var devices []DeviceConfig
	for _, section := range f.Sections() {
		if !strings.HasPrefix(section.Name(), deviceSectionPrefix) {
			continue
		}

		device, err := parseDevice(section)
		if err != nil {
			return nil, err
		}

		devices = append(devices, device)
	}

	if len(devices) > 0 {
		sort.Slice(devices, func(i, j int) bool {
			return devices[i].ID < devices[j].ID
		})

		cfg.Devices = devices
	}

	return cfg, nil
}

// optionalString returns the value of the key, even when empty, or def when the key is absent.
func optionalString(section *ini.Section, name string, def string) string {
	if !section.HasKey(name) {
		return def
	}

	return section.Key(name).String()
}

func parseDevice(section *ini.Section) (DeviceConfig, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(section.Name(), deviceSectionPrefix), 10, 32)
	if err != nil {
		return DeviceConfig{}, fmt.Errorf("invalid device section %q: %w", section.Name(), err)
	}

	def := defaultDevice()
	device := DeviceConfig{
		ID:   int32(id),
		Name: section.Key("name").MustString(fmt.Sprintf("touchpad-%d", id)),
		XMin: float32(section.Key("x_min").MustFloat64(float64(def.XMin))),
		XMax: float32(section.Key("x_max").MustFloat64(float64(def.XMax))),
		YMin: float32(section.Key("y_min").MustFloat64(float64(def.YMin))),
		YMax: float32(section.Key("y_max").MustFloat64(float64(def.YMax))),
	}

	if device.XAxisRange() <= 0 || device.YAxisRange() <= 0 {
		return DeviceConfig{}, fmt.Errorf("device %d has an empty axis range", id)
	}

	return device, nil
}

// Device returns the configuration of the device with the given id.
func (c *Config) Device(id int32) (DeviceConfig, bool) {
	for _, d := range c.Devices {
		if d.ID == id {
			return d, true
		}
	}

	return DeviceConfig{}, false
}

// File renders the configuration as an ini file.
func (c *Config) File() *ini.File {
	f := ini.Empty()

	agent := f.Section("agent")
	agent.Key("grpc_addr").SetValue(c.Agent.GrpcAddr)
	agent.Key("ws_addr").SetValue(c.Agent.WsAddr)
	agent.Key("log_level").SetValue(c.Agent.LogLevel)
	agent.Key("record_path").SetValue(c.Agent.RecordPath)
	agent.Key("hub_capacity").SetValue(strconv.Itoa(c.Agent.HubCapacity))

	disp := f.Section("display")
	disp.Key("id").SetValue(strconv.FormatInt(int64(c.Display.ID), 10))
	disp.Key("width").SetValue(strconv.Itoa(c.Display.Width))
	disp.Key("height").SetValue(strconv.Itoa(c.Display.Height))
	disp.Key("rotation").SetValue(strconv.Itoa(c.Display.Rotation.Degrees()))

	for _, d := range c.Devices {
		section := f.Section(deviceSectionPrefix + strconv.FormatInt(int64(d.ID), 10))
		section.Key("name").SetValue(d.Name)
		section.Key("x_min").SetValue(formatFloat(d.XMin))
		section.Key("x_max").SetValue(formatFloat(d.XMax))
		section.Key("y_min").SetValue(formatFloat(d.YMin))
		section.Key("y_max").SetValue(formatFloat(d.YMax))
	}

	return f
}

func (c *Config) SaveTo(path string) error {
	return c.File().SaveTo(path)
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
