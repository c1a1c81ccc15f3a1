package domain

import (
	"time"

	"cloud.google.com/go/civil"
)

// Window é um intervalo semiaberto [Since, Until) em segundos UNIX
type Window struct {
	Since int64
	Until int64
}

// DayWindow representa o dia civil Date no fuso Location como uma janela [00:00, 00:00 do dia seguinte)
type DayWindow struct {
	Window
	Date     civil.Date
	Location *time.Location
}

// NewDayWindow calcula a janela do dia d no fuso loc.
// Em dias de troca de horário a janela pode não ter exatamente 86400 segundos.
func NewDayWindow(d civil.Date, loc *time.Location) DayWindow {
	start := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
	end := time.Date(d.Year, d.Month, d.Day+1, 0, 0, 0, 0, loc)

	return DayWindow{
		Window: Window{
			Since: start.Unix(),
			Until: end.Unix(),
		},
		Date:     d,
		Location: loc,
	}
}

// Today retorna a data civil de now no fuso loc
func Today(now time.Time, loc *time.Location) civil.Date {
	return civil.DateOf(now.In(loc))
}

// Yesterday retorna a data civil anterior a now no fuso loc
func Yesterday(now time.Time, loc *time.Location) civil.Date {
	return Today(now, loc).AddDays(-1)
}

// DateOfUnix converte um timestamp UNIX para a data civil no fuso loc
func DateOfUnix(ts int64, loc *time.Location) civil.Date {
	return civil.DateOf(time.Unix(ts, 0).In(loc))
}

// LastNDays retorna a janela [hoje-n 00:00, hoje 00:00) no fuso loc
func LastNDays(now time.Time, n int, loc *time.Location) Window {
	today := Today(now, loc)
	first := NewDayWindow(today.AddDays(-n), loc)
	last := NewDayWindow(today, loc)

	return Window{
		Since: first.Since,
		Until: last.Since,
	}
}
