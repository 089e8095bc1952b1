// Package pickup combina la fecha y la hora de recogida en su representación
// para pantalla, con el calendario y reloj de Asia/Manila.
package pickup

import "time"

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	displayDateLayout = "Jan 02, 2006"
	displayTimeLayout = "03:04 PM"

	// Placeholder cuando falta la fecha o la hora; la vista nunca falla por
	// una agenda incompleta.
	Placeholder = "-"
)

// manila se resuelve una sola vez; si la base de datos de zonas no está
// disponible se cae a UTC+8 fijo (Filipinas no tiene horario de verano).
var manila = loadManila()

func loadManila() *time.Location {
	loc, err := time.LoadLocation("Asia/Manila")
	if err != nil {
		return time.FixedZone("PHT", 8*60*60)
	}
	return loc
}

// Format renderiza la recogida como {fecha, hora} para pantalla.
// Si falta cualquiera de las dos partes, o alguna no parsea, devuelve el par
// de placeholders ("-", "-"). Pura y determinista.
func Format(date, timeOfDay string) (displayDate, displayTime string) {
	if date == "" || timeOfDay == "" {
		return Placeholder, Placeholder
	}
	dt, err := time.ParseInLocation(dateLayout+" "+timeLayout, date+" "+timeOfDay, manila)
	if err != nil {
		return Placeholder, Placeholder
	}
	return dt.Format(displayDateLayout), dt.Format(displayTimeLayout)
}

// ValidSchedule indica si date y timeOfDay tienen los layouts esperados
// ("2006-01-02" y "15:04"). Se usa en la validación de alta/edición.
func ValidSchedule(date, timeOfDay string) bool {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return false
	}
	if _, err := time.Parse(timeLayout, timeOfDay); err != nil {
		return false
	}
	return true
}
