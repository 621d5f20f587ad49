package web

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/index.html
var templateFS embed.FS

// DefaultLang is the language of the bare "/" landing page.
const DefaultLang = "ko"

type pageText struct {
	Title      string
	Tagline    string
	City       string
	District   string
	Temp       string
	Sky        string
	Humidity   string
	Diversity  string
	Submit     string
	Loading    string
	Failed     string
	SwitchLang string
	SwitchHref string
}

var texts = map[string]pageText{
	"ko": {
		Title:      "파라구르메",
		Tagline:    "지금 이 거리, 이 날씨에 딱 맞는 한 가지 메뉴",
		City:       "도시",
		District:   "동네",
		Temp:       "기온 (°C)",
		Sky:        "하늘",
		Humidity:   "습도 (%)",
		Diversity:  "다른 메뉴 추천받기",
		Submit:     "추천받기",
		Loading:    "주변을 둘러보는 중...",
		Failed:     "추천을 가져오지 못했어요.",
		SwitchLang: "English",
		SwitchHref: "/en/",
	},
	"en": {
		Title:      "Paragourmet",
		Tagline:    "One dish for this street, in this weather, right now",
		City:       "City",
		District:   "District",
		Temp:       "Temperature (°C)",
		Sky:        "Sky",
		Humidity:   "Humidity (%)",
		Diversity:  "Suggest something different",
		Submit:     "Suggest",
		Loading:    "Looking around...",
		Failed:     "Could not get a suggestion.",
		SwitchLang: "한국어",
		SwitchHref: "/kr/",
	},
}

type pageData struct {
	Lang string
	Text pageText
}

// Handler renders the landing page.
type Handler struct {
	tmpl   *template.Template
	logger *slog.Logger
}

func NewHandler(logger *slog.Logger) (*Handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, err
	}
	return &Handler{tmpl: tmpl, logger: logger}, nil
}

// Index returns the page handler for lang. Unknown languages get the default.
func (h *Handler) Index(lang string) http.HandlerFunc {
	text, ok := texts[lang]
	if !ok {
		lang = DefaultLang
		text = texts[DefaultLang]
	}
	data := pageData{Lang: lang, Text: text}

	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := h.tmpl.Execute(&buf, data); err != nil {
			h.logger.ErrorContext(r.Context(), "Failed to render landing page", slog.Any("error", err))
			http.Error(w, "template error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = buf.WriteTo(w)
	}
}
