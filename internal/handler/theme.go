package handler

import (
	"net/http"

	"github.com/AlexZinkM/nebula-dashboard/internal/model"
	"github.com/AlexZinkM/nebula-dashboard/internal/theme"
)

// ThemeResponse represents response for the /theme endpoints
type ThemeResponse struct {
	Preset   string          `json:"preset"`
	Presets  []string        `json:"presets"`
	Override *theme.Override `json:"override,omitempty"`
	Active   theme.Spec      `json:"active"`
	Vars     []theme.Var     `json:"vars"`
}

func (h *Handler) themeResponse() ThemeResponse {
	active := h.themes.Active()
	return ThemeResponse{
		Preset:   h.themes.PresetName(),
		Presets:  theme.PresetNames(),
		Override: h.themes.Override(),
		Active:   active,
		Vars:     active.Vars(),
	}
}

// GetTheme handles GET /theme
// @Summary      Active theme
// @Tags         theme
// @Produce      json
// @Success      200  {object}  ThemeResponse
// @Router       /theme [get]
func (h *Handler) GetTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.themeResponse())
}

// SetTheme handles PUT /theme
// @Summary      Switch preset
// @Description  Selects a preset and discards any customization
// @Tags         theme
// @Accept       json
// @Produce      json
// @Param        request  body      model.ThemeRequest  true  "Preset"
// @Success      200      {object}  ThemeResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /theme [put]
func (h *Handler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req model.ThemeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.CodeBadRequest, err)
		return
	}
	if err := h.themes.SetTheme(req.Name); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.themeResponse())
}

// CustomizeTheme handles PATCH /theme
// @Summary      Customize theme
// @Description  Merges the given fields onto the current override
// @Tags         theme
// @Accept       json
// @Produce      json
// @Param        request  body      theme.Override  true  "Partial override"
// @Success      200      {object}  ThemeResponse
// @Router       /theme [patch]
func (h *Handler) CustomizeTheme(w http.ResponseWriter, r *http.Request) {
	var partial theme.Override
	if err := decodeJSON(r, &partial); err != nil {
		writeError(w, http.StatusBadRequest, model.CodeBadRequest, err)
		return
	}
	if err := h.themes.CustomizeTheme(partial); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.themeResponse())
}

// ResetTheme handles DELETE /theme/override
// @Summary      Reset customization
// @Tags         theme
// @Produce      json
// @Success      200  {object}  ThemeResponse
// @Router       /theme/override [delete]
func (h *Handler) ResetTheme(w http.ResponseWriter, r *http.Request) {
	if err := h.themes.ResetTheme(); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.themeResponse())
}

// ThemeCSS handles GET /theme/vars.css
// @Summary      Theme style variables
// @Tags         theme
// @Produce      text/css
// @Success      200
// @Router       /theme/vars.css [get]
func (h *Handler) ThemeCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(h.themes.Active().CSS()))
}
