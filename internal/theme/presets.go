package theme

// Colors is the fixed set of named colors every preset defines.
type Colors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"text"`
	TextMuted  string `json:"textMuted"`
	Success    string `json:"success"`
	Warning    string `json:"warning"`
	Error      string `json:"error"`
	Border     string `json:"border"`
}

// Effects are CSS values for decorative effects (glows, shadows, gradients).
type Effects struct {
	Glow     string `json:"glow"`
	Shadow   string `json:"shadow"`
	Gradient string `json:"gradient"`
	Blur     string `json:"blur"`
}

// Fonts are font-family identifiers.
type Fonts struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
	Mono    string `json:"mono"`
}

// Spec is a complete theme: a preset, or a preset with an override applied.
type Spec struct {
	Name    string  `json:"name"`
	Colors  Colors  `json:"colors"`
	Effects Effects `json:"effects"`
	Fonts   Fonts   `json:"fonts"`
}

// DefaultPreset is used when nothing (or something unknown) was persisted.
const DefaultPreset = "nebula"

var presets = []Spec{
	{
		Name: "nebula",
		Colors: Colors{
			Primary:    "#8b5cf6",
			Secondary:  "#06b6d4",
			Accent:     "#f472b6",
			Background: "#0b0b1a",
			Surface:    "#161630",
			Text:       "#e2e8f0",
			TextMuted:  "#94a3b8",
			Success:    "#22c55e",
			Warning:    "#f59e0b",
			Error:      "#ef4444",
			Border:     "#312e81",
		},
		Effects: Effects{
			Glow:     "0 0 20px rgba(139, 92, 246, 0.5)",
			Shadow:   "0 8px 32px rgba(0, 0, 0, 0.45)",
			Gradient: "linear-gradient(135deg, #8b5cf6 0%, #06b6d4 100%)",
			Blur:     "blur(12px)",
		},
		Fonts: Fonts{Heading: "Orbitron", Body: "Inter", Mono: "JetBrains Mono"},
	},
	{
		Name: "aurora",
		Colors: Colors{
			Primary:    "#10b981",
			Secondary:  "#38bdf8",
			Accent:     "#a3e635",
			Background: "#03140f",
			Surface:    "#0b2a22",
			Text:       "#ecfdf5",
			TextMuted:  "#86a89b",
			Success:    "#34d399",
			Warning:    "#fbbf24",
			Error:      "#f87171",
			Border:     "#065f46",
		},
		Effects: Effects{
			Glow:     "0 0 24px rgba(16, 185, 129, 0.45)",
			Shadow:   "0 8px 28px rgba(0, 0, 0, 0.5)",
			Gradient: "linear-gradient(135deg, #10b981 0%, #38bdf8 100%)",
			Blur:     "blur(10px)",
		},
		Fonts: Fonts{Heading: "Exo 2", Body: "Inter", Mono: "Fira Code"},
	},
	{
		Name: "solar",
		Colors: Colors{
			Primary:    "#f97316",
			Secondary:  "#facc15",
			Accent:     "#fb7185",
			Background: "#1a0f05",
			Surface:    "#2b1a0b",
			Text:       "#fff7ed",
			TextMuted:  "#c2a68a",
			Success:    "#84cc16",
			Warning:    "#eab308",
			Error:      "#dc2626",
			Border:     "#7c2d12",
		},
		Effects: Effects{
			Glow:     "0 0 22px rgba(249, 115, 22, 0.5)",
			Shadow:   "0 8px 30px rgba(0, 0, 0, 0.5)",
			Gradient: "linear-gradient(135deg, #f97316 0%, #facc15 100%)",
			Blur:     "blur(8px)",
		},
		Fonts: Fonts{Heading: "Rajdhani", Body: "Inter", Mono: "IBM Plex Mono"},
	},
	{
		Name: "void",
		Colors: Colors{
			Primary:    "#e5e7eb",
			Secondary:  "#9ca3af",
			Accent:     "#60a5fa",
			Background: "#000000",
			Surface:    "#0a0a0a",
			Text:       "#f9fafb",
			TextMuted:  "#6b7280",
			Success:    "#4ade80",
			Warning:    "#fcd34d",
			Error:      "#f87171",
			Border:     "#262626",
		},
		Effects: Effects{
			Glow:     "none",
			Shadow:   "0 4px 16px rgba(0, 0, 0, 0.8)",
			Gradient: "linear-gradient(135deg, #111111 0%, #262626 100%)",
			Blur:     "none",
		},
		Fonts: Fonts{Heading: "Space Grotesk", Body: "Space Grotesk", Mono: "Space Mono"},
	},
}

// Presets returns all built-in presets in display order.
func Presets() []Spec {
	out := make([]Spec, len(presets))
	copy(out, presets)
	return out
}

// PresetNames returns the preset names in display order.
func PresetNames() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

// Preset looks up a preset by name. The returned Spec is a copy.
func Preset(name string) (Spec, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Spec{}, false
}
