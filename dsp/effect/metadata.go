package effect

// ParamKind distinguishes continuous from stepped parameters.
type ParamKind uint8

const (
	// ParamNumber is a continuous value mapped over [Min, Max].
	ParamNumber ParamKind = iota
	// ParamEnum selects one of Options; the normalized value is split
	// into equal ranges.
	ParamEnum
)

// ParamInfo describes one parameter of an effect type.
type ParamInfo struct {
	ID      uint8
	Name    string
	Unit    string
	Kind    ParamKind
	Min     float64
	Max     float64
	Default float64 // normalized [0, 1]
	Options []string
}

// Metadata is the static descriptor of an effect type.
type Metadata struct {
	Type        uint8
	Name        string
	ShortName   string
	Description string
	Mode        ChannelMode
	Params      []ParamInfo
}

// Param returns the descriptor for the given parameter id, or nil.
func (m *Metadata) Param(id uint8) *ParamInfo {
	for i := range m.Params {
		if m.Params[i].ID == id {
			return &m.Params[i]
		}
	}
	return nil
}

// EnumIndex maps a normalized value to an option index for an enum
// parameter with n options.
func EnumIndex(v float64, n int) int {
	if n <= 1 {
		return 0
	}
	idx := int(v * float64(n))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
