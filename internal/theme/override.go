package theme

// ColorsOverride carries the colors a user changed. Nil means "keep the preset value".
type ColorsOverride struct {
	Primary    *string `json:"primary,omitempty"`
	Secondary  *string `json:"secondary,omitempty"`
	Accent     *string `json:"accent,omitempty"`
	Background *string `json:"background,omitempty"`
	Surface    *string `json:"surface,omitempty"`
	Text       *string `json:"text,omitempty"`
	TextMuted  *string `json:"textMuted,omitempty"`
	Success    *string `json:"success,omitempty"`
	Warning    *string `json:"warning,omitempty"`
	Error      *string `json:"error,omitempty"`
	Border     *string `json:"border,omitempty"`
}

type EffectsOverride struct {
	Glow     *string `json:"glow,omitempty"`
	Shadow   *string `json:"shadow,omitempty"`
	Gradient *string `json:"gradient,omitempty"`
	Blur     *string `json:"blur,omitempty"`
}

type FontsOverride struct {
	Heading *string `json:"heading,omitempty"`
	Body    *string `json:"body,omitempty"`
	Mono    *string `json:"mono,omitempty"`
}

// Override is a partial theme. Colors, effects and fonts merge independently.
type Override struct {
	Colors  *ColorsOverride  `json:"colors,omitempty"`
	Effects *EffectsOverride `json:"effects,omitempty"`
	Fonts   *FontsOverride   `json:"fonts,omitempty"`
}

// IsEmpty reports whether the override changes nothing.
func (o Override) IsEmpty() bool {
	return o.Colors == nil && o.Effects == nil && o.Fonts == nil
}

// Apply returns base with every set field of o replacing the base value.
func (o Override) Apply(base Spec) Spec {
	out := base
	if c := o.Colors; c != nil {
		set(&out.Colors.Primary, c.Primary)
		set(&out.Colors.Secondary, c.Secondary)
		set(&out.Colors.Accent, c.Accent)
		set(&out.Colors.Background, c.Background)
		set(&out.Colors.Surface, c.Surface)
		set(&out.Colors.Text, c.Text)
		set(&out.Colors.TextMuted, c.TextMuted)
		set(&out.Colors.Success, c.Success)
		set(&out.Colors.Warning, c.Warning)
		set(&out.Colors.Error, c.Error)
		set(&out.Colors.Border, c.Border)
	}
	if e := o.Effects; e != nil {
		set(&out.Effects.Glow, e.Glow)
		set(&out.Effects.Shadow, e.Shadow)
		set(&out.Effects.Gradient, e.Gradient)
		set(&out.Effects.Blur, e.Blur)
	}
	if f := o.Fonts; f != nil {
		set(&out.Fonts.Heading, f.Heading)
		set(&out.Fonts.Body, f.Body)
		set(&out.Fonts.Mono, f.Mono)
	}
	return out
}

// Merge layers next on top of o; fields set in next win.
func (o Override) Merge(next Override) Override {
	out := Override{}

	if o.Colors != nil || next.Colors != nil {
		c := ColorsOverride{}
		if o.Colors != nil {
			c = *o.Colors
		}
		if n := next.Colors; n != nil {
			keep(&c.Primary, n.Primary)
			keep(&c.Secondary, n.Secondary)
			keep(&c.Accent, n.Accent)
			keep(&c.Background, n.Background)
			keep(&c.Surface, n.Surface)
			keep(&c.Text, n.Text)
			keep(&c.TextMuted, n.TextMuted)
			keep(&c.Success, n.Success)
			keep(&c.Warning, n.Warning)
			keep(&c.Error, n.Error)
			keep(&c.Border, n.Border)
		}
		out.Colors = &c
	}

	if o.Effects != nil || next.Effects != nil {
		e := EffectsOverride{}
		if o.Effects != nil {
			e = *o.Effects
		}
		if n := next.Effects; n != nil {
			keep(&e.Glow, n.Glow)
			keep(&e.Shadow, n.Shadow)
			keep(&e.Gradient, n.Gradient)
			keep(&e.Blur, n.Blur)
		}
		out.Effects = &e
	}

	if o.Fonts != nil || next.Fonts != nil {
		f := FontsOverride{}
		if o.Fonts != nil {
			f = *o.Fonts
		}
		if n := next.Fonts; n != nil {
			keep(&f.Heading, n.Heading)
			keep(&f.Body, n.Body)
			keep(&f.Mono, n.Mono)
		}
		out.Fonts = &f
	}

	return out
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func keep(dst **string, v *string) {
	if v != nil {
		s := *v
		*dst = &s
	}
}

// String returns a pointer to s, for building overrides in code.
func String(s string) *string {
	return &s
}
