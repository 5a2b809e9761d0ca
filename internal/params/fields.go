package params

import "math"

// FieldID identifies one tunable in the Store.
type FieldID int

const (
	FieldCubeX FieldID = iota
	FieldCubeY
	FieldCubeZ
	FieldLockCube
	FieldZoom
	FieldSampleScale
	FieldNoiseType
	FieldSeed
	FieldFrequency
	FieldFractalMode
	FieldFractalType
	FieldOctaves
	FieldLacunarity
	FieldGain
	FieldDistance
	FieldReturn
	FieldJitter
	FieldWarpType
	FieldWarpAmplitude

	fieldCount
)

// Kind tells the panel which widget to bind a field to.
type Kind int

const (
	KindFloat Kind = iota
	KindInt
	KindOption
	KindToggle
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindOption:
		return "option"
	case KindToggle:
		return "toggle"
	}
	return "unknown"
}

// Field describes a tunable: its label, widget kind and bounds.
// Option fields are bounded by their option table.
type Field struct {
	ID      FieldID
	Label   string
	Kind    Kind
	Min     float64
	Max     float64
	Format  string
	Options []string
}

// Option tables. Order matches the pkg/noise enums.
var (
	NoiseTypeNames = []string{
		"Open Simplex 2",
		"Open Simplex 2S",
		"Cellular",
		"Perlin",
		"Value Cubic",
		"Value",
	}
	FractalModeNames = []string{"None", "Fractal"}
	FractalTypeNames = []string{
		"None",
		"FBm",
		"Ridged",
		"Ping Pong",
		"Domain Warp Progressive",
		"Domain Warp Independent",
	}
	DistanceNames = []string{"Euclidean", "Euclidean Sq", "Manhattan", "Hybrid"}
	ReturnNames   = []string{
		"Cell Value",
		"Distance",
		"Distance 2",
		"Distance 2 Add",
		"Distance 2 Sub",
		"Distance 2 Mul",
		"Distance 2 Div",
	}
	WarpTypeNames = []string{"Open Simplex 2", "Open Simplex 2 Reduced", "Basic Grid"}
)

var fields = [fieldCount]Field{
	FieldCubeX:         {Label: "Cube X Size", Kind: KindFloat, Min: 1, Max: 250, Format: "%.0f"},
	FieldCubeY:         {Label: "Cube Y Size", Kind: KindFloat, Min: 1, Max: 250, Format: "%.0f"},
	FieldCubeZ:         {Label: "Cube Z Size", Kind: KindFloat, Min: 1, Max: 250, Format: "%.0f"},
	FieldLockCube:      {Label: "Lock To Cube", Kind: KindToggle},
	FieldZoom:          {Label: "Camera Zoom", Kind: KindFloat, Min: 0.4, Max: 2.0, Format: "%.2f"},
	FieldSampleScale:   {Label: "Sample Scale", Kind: KindInt, Min: 1, Max: 50, Format: "%d"},
	FieldNoiseType:     {Label: "Noise Type", Kind: KindOption, Options: NoiseTypeNames},
	FieldSeed:          {Label: "Seed", Kind: KindInt, Min: 0, Max: math.MaxInt32, Format: "%d"},
	FieldFrequency:     {Label: "Frequency", Kind: KindFloat, Min: 0.001, Max: 0.1, Format: "%.3f"},
	FieldFractalMode:   {Label: "Fractal Mode", Kind: KindOption, Options: FractalModeNames},
	FieldFractalType:   {Label: "Fractal Type", Kind: KindOption, Options: FractalTypeNames},
	FieldOctaves:       {Label: "Octaves", Kind: KindInt, Min: 1, Max: 8, Format: "%d"},
	FieldLacunarity:    {Label: "Lacunarity", Kind: KindFloat, Min: 1, Max: 4, Format: "%.2f"},
	FieldGain:          {Label: "Gain", Kind: KindFloat, Min: 0, Max: 1, Format: "%.2f"},
	FieldDistance:      {Label: "Distance Function", Kind: KindOption, Options: DistanceNames},
	FieldReturn:        {Label: "Return Type", Kind: KindOption, Options: ReturnNames},
	FieldJitter:        {Label: "Jitter", Kind: KindFloat, Min: 0.1, Max: 5.0, Format: "%.2f"},
	FieldWarpType:      {Label: "Warp Type", Kind: KindOption, Options: WarpTypeNames},
	FieldWarpAmplitude: {Label: "Warp Amplitude", Kind: KindFloat, Min: 0.1, Max: 2.0, Format: "%.2f"},
}

func init() {
	for i := range fields {
		fields[i].ID = FieldID(i)
		if fields[i].Kind == KindOption {
			fields[i].Min = 0
			fields[i].Max = float64(len(fields[i].Options) - 1)
			fields[i].Format = "%s"
		}
	}
}

// Describe returns the descriptor of a field.
func Describe(id FieldID) Field {
	if id < 0 || id >= fieldCount {
		return Field{ID: id, Label: "?"}
	}
	return fields[id]
}

// AllFields returns every field ID in display order.
func AllFields() []FieldID {
	ids := make([]FieldID, fieldCount)
	for i := range ids {
		ids[i] = FieldID(i)
	}
	return ids
}

// VisibleFields returns the fields that apply to the current settings, in
// display order. Cellular settings show only for cellular noise, fractal
// settings only in fractal mode, and warp settings only when a domain warp
// variant is selected in fractal mode.
func VisibleFields(s *Store) []FieldID {
	ids := []FieldID{FieldCubeX}
	if !s.LockCube {
		ids = append(ids, FieldCubeY, FieldCubeZ)
	}
	ids = append(ids,
		FieldLockCube,
		FieldZoom,
		FieldSampleScale,
		FieldNoiseType,
		FieldSeed,
		FieldFrequency,
	)

	if s.NoiseType == noiseTypeCellular {
		ids = append(ids, FieldDistance, FieldReturn, FieldJitter)
	}

	ids = append(ids, FieldFractalMode)
	if s.FractalMode != fractalModeFractal {
		return ids
	}

	ids = append(ids, FieldFractalType)
	if s.FractalType != fractalTypeNone {
		ids = append(ids, FieldOctaves, FieldLacunarity, FieldGain)
	}
	if s.warpSelected() {
		ids = append(ids, FieldWarpType, FieldWarpAmplitude)
	}
	return ids
}
