// Package i18n локализация дат, времени и цен.
// LocaleContext передается явным параметром в каждый вызов -
// глобального мутабельного состояния локали в сервисе нет.
package i18n

import (
	"fmt"
	"time"

	"github.com/citystride/CST-BookingService/pkg/types"
)

// LocaleContext контекст локализации одного запроса
type LocaleContext struct {
	Language string // ISO-639-1 код языка интерфейса
	Currency string // код валюты отображения
}

// NewLocaleContext создает контекст для языка с его валютой отображения
func NewLocaleContext(language string) LocaleContext {
	return LocaleContext{
		Language: language,
		Currency: CurrencyForLanguage(language),
	}
}

// CurrencyForLanguage возвращает валюту отображения для языка сайта
// Базовые цены хранятся в GBP, конверсия только для отображения
func CurrencyForLanguage(language string) string {
	switch language {
	case "es", "fr", "it", "de":
		return "EUR"
	case "ja":
		return "JPY"
	case "zh":
		return "CNY"
	default:
		return "GBP"
	}
}

// monthNames названия месяцев по локалям (индекс 0 = январь)
var monthNames = map[string][12]string{
	"en": {"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	"es": {"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
	"fr": {"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	"it": {"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno", "luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre"},
	"de": {"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
	"ja": {"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
	"zh": {"一月", "二月", "三月", "四月", "五月", "六月", "七月", "八月", "九月", "十月", "十一月", "十二月"},
}

// dayNames короткие названия дней недели по локалям (индекс 0 = воскресенье)
var dayNames = map[string][7]string{
	"en": {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	"es": {"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
	"fr": {"dim", "lun", "mar", "mer", "jeu", "ven", "sam"},
	"it": {"dom", "lun", "mar", "mer", "gio", "ven", "sab"},
	"de": {"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	"ja": {"日", "月", "火", "水", "木", "金", "土"},
	"zh": {"日", "一", "二", "三", "四", "五", "六"},
}

// MonthName возвращает локализованное название месяца
func (lc LocaleContext) MonthName(month time.Month) string {
	names, ok := monthNames[lc.Language]
	if !ok {
		names = monthNames["en"]
	}
	return names[int(month)-1]
}

// DayName возвращает локализованное короткое название дня недели
// weekday в нумерации календарной сетки: 0 = воскресенье
func (lc LocaleContext) DayName(weekday int) string {
	names, ok := dayNames[lc.Language]
	if !ok {
		names = dayNames["en"]
	}
	return names[weekday%7]
}

// FormatDate возвращает локализованную длинную дату для экрана подтверждения
func (lc LocaleContext) FormatDate(t time.Time) string {
	switch lc.Language {
	case "ja", "zh":
		return fmt.Sprintf("%d年%s%d日", t.Year(), lc.MonthName(t.Month()), t.Day())
	case "en":
		return fmt.Sprintf("%s %d, %d", lc.MonthName(t.Month()), t.Day(), t.Year())
	default:
		return fmt.Sprintf("%d %s %d", t.Day(), lc.MonthName(t.Month()), t.Year())
	}
}

// FormatTime форматирует время суток: 12-часовой формат для en,
// 24-часовой для остальных локалей
func (lc LocaleContext) FormatTime(t types.TimeString) string {
	if lc.Language != "en" {
		return t.String()
	}
	parsed, err := time.Parse("15:04", t.String())
	if err != nil {
		return t.String()
	}
	return parsed.Format("03:04 PM")
}
