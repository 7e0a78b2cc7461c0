package forecast

import "strings"

// descriptionES maps OpenWeatherMap condition texts to the Spanish strings
// shown on the site. Unknown conditions fall back to the provider's text.
var descriptionES = map[string]string{
	"clear sky":        "Cielo despejado",
	"few clouds":       "Pocas nubes",
	"scattered clouds": "Nubes dispersas",
	"broken clouds":    "Nuboso",
	"overcast clouds":  "Muy nuboso",
	"shower rain":      "Chubascos",
	"rain":             "Lluvia",
	"light rain":       "Lluvia ligera",
	"moderate rain":    "Lluvia moderada",
	"heavy rain":       "Lluvia intensa",
	"thunderstorm":     "Tormenta",
	"snow":             "Nieve",
	"mist":             "Neblina",
	"fog":              "Niebla",
	"haze":             "Calima",
}

func translateDescription(description string) string {
	if es, ok := descriptionES[strings.ToLower(description)]; ok {
		return es
	}
	return description
}

// ClothingAdvice suggests what to wear based on temperature and conditions.
// It is total: every temperature and description, including the empty
// string, yields a non-empty suggestion.
func ClothingAdvice(temp int, description string) string {
	lower := strings.ToLower(description)
	rainy := strings.Contains(lower, "lluvia") || strings.Contains(lower, "rain")

	switch {
	case temp < 10:
		if rainy {
			return "Temperatura fría con lluvia. Recomendamos abrigo elegante y paraguas."
		}
		return "Temperatura fría. Recomendamos abrigo elegante o chal para las señoras."
	case temp < 15:
		if rainy {
			return "Temperatura fresca con lluvia. Recomendamos chaqueta y paraguas."
		}
		return "Temperatura fresca. Una chaqueta o chal será útil, especialmente para la noche."
	case temp < 20:
		if rainy {
			return "Temperatura agradable con posibilidad de lluvia. Llevad paraguas por si acaso."
		}
		return "Temperatura agradable para la época. Ideal para el código de vestimenta elegante."
	default:
		if rainy {
			return "Temperatura cálida con lluvia. Ropa ligera elegante y paraguas."
		}
		return "Temperatura cálida. Ropa elegante y ligera será perfecta."
	}
}
