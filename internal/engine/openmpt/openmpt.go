package openmpt

/*
#cgo pkg-config: libopenmpt
#include <stdlib.h>
#include <libopenmpt/libopenmpt.h>
#include <libopenmpt/libopenmpt_ext.h>

static openmpt_module_ext *untracker_load(const void *data, size_t size, int *err, const char **msg) {
	return openmpt_module_ext_create_from_memory(
		data, size,
		openmpt_log_func_silent, NULL,
		openmpt_error_func_store, NULL,
		err, msg, NULL);
}

static int untracker_get_interactive(openmpt_module_ext *m, openmpt_module_ext_interface_interactive *out) {
	return openmpt_module_ext_get_interface(m, LIBOPENMPT_EXT_C_INTERFACE_INTERACTIVE, out, sizeof(*out));
}

static int untracker_set_mute(openmpt_module_ext *m, openmpt_module_ext_interface_interactive *iface, int32_t index, int mute) {
	return iface->set_instrument_mute_status(m, index, mute);
}
*/
import "C"

import (
	"fmt"
	"unsafe"

	"untracker/internal/engine"
)

// Module wraps a loaded openmpt_module_ext handle.
type Module struct {
	ext         *C.openmpt_module_ext
	mod         *C.openmpt_module
	interactive C.openmpt_module_ext_interface_interactive
	hasMute     bool
}

var _ engine.Module = (*Module)(nil)

// Load parses module data and returns a playable engine instance.
func Load(data []byte) (*Module, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("openmpt: empty module data")
	}

	var cerr C.int
	var cmsg *C.char
	ext := C.untracker_load(unsafe.Pointer(&data[0]), C.size_t(len(data)), &cerr, &cmsg)
	if ext == nil {
		msg := "unknown error"
		if cmsg != nil {
			msg = C.GoString(cmsg)
			C.openmpt_free_string(cmsg)
		}
		return nil, fmt.Errorf("openmpt: load module: %s", msg)
	}
	if cmsg != nil {
		C.openmpt_free_string(cmsg)
	}

	m := &Module{ext: ext, mod: C.openmpt_module_ext_get_module(ext)}
	if C.untracker_get_interactive(ext, &m.interactive) != 0 {
		m.hasMute = true
	}
	return m, nil
}

func (m *Module) NumInstruments() int {
	return int(C.openmpt_module_get_num_instruments(m.mod))
}

func (m *Module) NumSamples() int {
	return int(C.openmpt_module_get_num_samples(m.mod))
}

func (m *Module) NumChannels() int {
	return int(C.openmpt_module_get_num_channels(m.mod))
}

func (m *Module) Metadata(key string) string {
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))
	cval := C.openmpt_module_get_metadata(m.mod, ckey)
	if cval == nil {
		return ""
	}
	defer C.openmpt_free_string(cval)
	return C.GoString(cval)
}

func (m *Module) InstrumentNames() ([]string, error) {
	count := m.NumInstruments()
	names := make([]string, count)
	for i := range names {
		names[i] = m.instrumentName(i)
	}
	return names, nil
}

func (m *Module) SampleNames() ([]string, error) {
	count := m.NumSamples()
	names := make([]string, count)
	for i := range names {
		names[i] = m.sampleName(i)
	}
	return names, nil
}

func (m *Module) instrumentName(index int) string {
	cval := C.openmpt_module_get_instrument_name(m.mod, C.int32_t(index))
	if cval == nil {
		return ""
	}
	defer C.openmpt_free_string(cval)
	return C.GoString(cval)
}

func (m *Module) sampleName(index int) string {
	cval := C.openmpt_module_get_sample_name(m.mod, C.int32_t(index))
	if cval == nil {
		return ""
	}
	defer C.openmpt_free_string(cval)
	return C.GoString(cval)
}

func renderParamID(param engine.RenderParam) (C.int, error) {
	switch param {
	case engine.ParamStereoSeparation:
		return C.OPENMPT_MODULE_RENDER_STEREOSEPARATION_PERCENT, nil
	case engine.ParamInterpolationLength:
		return C.OPENMPT_MODULE_RENDER_INTERPOLATIONFILTER_LENGTH, nil
	}
	return 0, fmt.Errorf("openmpt: unknown render parameter %d", param)
}

func (m *Module) RenderParam(param engine.RenderParam) (int32, error) {
	id, err := renderParamID(param)
	if err != nil {
		return 0, err
	}
	var value C.int32_t
	if C.openmpt_module_get_render_param(m.mod, id, &value) == 0 {
		return 0, fmt.Errorf("openmpt: get render parameter %d", param)
	}
	return int32(value), nil
}

func (m *Module) SetRenderParam(param engine.RenderParam, value int32) error {
	id, err := renderParamID(param)
	if err != nil {
		return err
	}
	if C.openmpt_module_set_render_param(m.mod, id, C.int32_t(value)) == 0 {
		return fmt.Errorf("openmpt: set render parameter %d to %d", param, value)
	}
	return nil
}

func (m *Module) PositionSeconds() float64 {
	return float64(C.openmpt_module_get_position_seconds(m.mod))
}

func (m *Module) SetPositionSeconds(seconds float64) float64 {
	return float64(C.openmpt_module_set_position_seconds(m.mod, C.double(seconds)))
}

func (m *Module) DurationSeconds() float64 {
	return float64(C.openmpt_module_get_duration_seconds(m.mod))
}

func (m *Module) SetVoiceMute(index int, muted bool) error {
	if !m.hasMute {
		return fmt.Errorf("openmpt: voice %d: %w", index, engine.ErrMuteUnsupported)
	}
	var mute C.int
	if muted {
		mute = 1
	}
	if C.untracker_set_mute(m.ext, &m.interactive, C.int32_t(index), mute) == 0 {
		return fmt.Errorf("openmpt: voice %d: %w", index, engine.ErrMuteUnsupported)
	}
	return nil
}

func (m *Module) ReadMono(sampleRate int, buf []float32) int {
	if len(buf) == 0 {
		return 0
	}
	n := C.openmpt_module_read_float_mono(m.mod,
		C.int32_t(sampleRate), C.size_t(len(buf)),
		(*C.float)(unsafe.Pointer(&buf[0])))
	return int(n)
}

func (m *Module) ReadStereo(sampleRate int, buf []float32) int {
	if len(buf) < 2 {
		return 0
	}
	n := C.openmpt_module_read_interleaved_float_stereo(m.mod,
		C.int32_t(sampleRate), C.size_t(len(buf)/2),
		(*C.float)(unsafe.Pointer(&buf[0])))
	return int(n)
}

func (m *Module) ReadQuad(sampleRate int, buf []float32) int {
	if len(buf) < 4 {
		return 0
	}
	n := C.openmpt_module_read_interleaved_float_quad(m.mod,
		C.int32_t(sampleRate), C.size_t(len(buf)/4),
		(*C.float)(unsafe.Pointer(&buf[0])))
	return int(n)
}

func (m *Module) Close() error {
	if m.ext != nil {
		C.openmpt_module_ext_destroy(m.ext)
		m.ext = nil
		m.mod = nil
	}
	return nil
}
