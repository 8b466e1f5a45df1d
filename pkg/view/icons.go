package view

import "strings"

// iconRule maps a keyword found in a name or icon hint to a display
// category. Rules are evaluated top to bottom; first match wins.
type iconRule struct {
	keywords []string
	category string
}

// Ordered so that more specific words come before generic ones
// ("laptop" before "tech").
var iconRules = []iconRule{
	{[]string{"laptop", "computadora", "pc"}, "laptop"},
	{[]string{"phone", "celular", "teléfono", "telefono"}, "phone"},
	{[]string{"tv", "televisor", "pantalla"}, "tv"},
	{[]string{"refri", "fridge", "nevera"}, "fridge"},
	{[]string{"lavadora", "washer"}, "washer"},
	{[]string{"carro", "car", "auto", "vehículo", "vehiculo"}, "car"},
	{[]string{"casa", "home", "hogar"}, "home"},
	{[]string{"audífono", "audifono", "headphone", "parlante", "speaker"}, "audio"},
	{[]string{"cámara", "camara", "camera"}, "camera"},
	{[]string{"reloj", "watch"}, "watch"},
	{[]string{"consola", "juego", "game", "play"}, "game"},
	{[]string{"herramienta", "tool", "taladro"}, "tools"},
}

// DefaultIconCategory is used when no rule matches.
const DefaultIconCategory = "device"

// IconCategory picks the display-icon category for a free-text hint,
// matching case-insensitively against the rule table.
func IconCategory(hint string) string {
	lower := strings.ToLower(hint)
	for _, rule := range iconRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return DefaultIconCategory
}
