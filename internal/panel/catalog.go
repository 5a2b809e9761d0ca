package panel

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// German panel strings. Anything missing falls back to the English key.
var german = map[string]string{
	"Config":                  "Einstellungen",
	"Cube X Size":             "Würfel X",
	"Cube Y Size":             "Würfel Y",
	"Cube Z Size":             "Würfel Z",
	"Lock To Cube":            "Würfel sperren",
	"Camera Zoom":             "Kamerazoom",
	"Sample Scale":            "Abtastschritt",
	"Noise Type":              "Rauschtyp",
	"Seed":                    "Startwert",
	"Frequency":               "Frequenz",
	"Fractal Mode":            "Fraktalmodus",
	"Fractal Type":            "Fraktaltyp",
	"Octaves":                 "Oktaven",
	"Lacunarity":              "Lakunarität",
	"Gain":                    "Verstärkung",
	"Distance Function":       "Distanzfunktion",
	"Return Type":             "Rückgabetyp",
	"Jitter":                  "Streuung",
	"Warp Type":               "Verzerrungstyp",
	"Warp Amplitude":          "Verzerrungsamplitude",
	"None":                    "Keiner",
	"Value":                   "Wert",
	"Value Cubic":             "Wert kubisch",
	"Cell Value":              "Zellwert",
	"Distance":                "Distanz",
	"Basic Grid":              "Einfaches Gitter",
	"Domain Warp Progressive": "Verzerrung progressiv",
	"Domain Warp Independent": "Verzerrung unabhängig",
}

func init() {
	for key, msg := range german {
		_ = message.SetString(language.German, key, msg)
	}
}
