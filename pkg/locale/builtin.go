package locale

import "time"

var asciiDigits = [10]rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'}

// English is the default locale.
func English() *Locale {
	return &Locale{
		Name: "en",
		Months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		Weekdays: [7]WeekDay{
			{Name: "Sunday", Short: "S", Weekday: time.Sunday},
			{Name: "Monday", Short: "M", Weekday: time.Monday},
			{Name: "Tuesday", Short: "T", Weekday: time.Tuesday},
			{Name: "Wednesday", Short: "W", Weekday: time.Wednesday},
			{Name: "Thursday", Short: "T", Weekday: time.Thursday},
			{Name: "Friday", Short: "F", Weekday: time.Friday},
			{Name: "Saturday", Short: "S", Weekday: time.Saturday},
		},
		WeekStart: time.Sunday,
		Weekend:   []time.Weekday{time.Saturday, time.Sunday},
		Digits:    asciiDigits,
		System:    GregorianSystem{},
		Labels: Labels{
			NextMonth:          "Next Month",
			PreviousMonth:      "Previous Month",
			OpenMonthSelector:  "Open Month Selector",
			OpenYearSelector:   "Open Year Selector",
			CloseMonthSelector: "Close Month Selector",
			CloseYearSelector:  "Close Year Selector",
			DefaultPlaceholder: "Select...",
			From:               "from",
			To:                 "to",
		},
	}
}

// Persian uses the Solar Hijri calendar, Persian digits and RTL layout.
func Persian() *Locale {
	return &Locale{
		Name: "fa",
		Months: [12]string{
			"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور",
			"مهر", "آبان", "آذر", "دی", "بهمن", "اسفند",
		},
		Weekdays: [7]WeekDay{
			{Name: "یکشنبه", Short: "ی", Weekday: time.Sunday},
			{Name: "دوشنبه", Short: "د", Weekday: time.Monday},
			{Name: "سه شنبه", Short: "س", Weekday: time.Tuesday},
			{Name: "چهارشنبه", Short: "چ", Weekday: time.Wednesday},
			{Name: "پنجشنبه", Short: "پ", Weekday: time.Thursday},
			{Name: "جمعه", Short: "ج", Weekday: time.Friday},
			{Name: "شنبه", Short: "ش", Weekday: time.Saturday},
		},
		WeekStart: time.Saturday,
		Weekend:   []time.Weekday{time.Friday},
		Digits:    [10]rune{'۰', '۱', '۲', '۳', '۴', '۵', '۶', '۷', '۸', '۹'},
		RTL:       true,
		System:    PersianSystem{},
		Labels: Labels{
			NextMonth:          "ماه بعد",
			PreviousMonth:      "ماه قبل",
			OpenMonthSelector:  "نمایش انتخابگر ماه",
			OpenYearSelector:   "نمایش انتخابگر سال",
			CloseMonthSelector: "بستن انتخابگر ماه",
			CloseYearSelector:  "بستن انتخابگر سال",
			DefaultPlaceholder: "انتخاب...",
			From:               "از",
			To:                 "تا",
		},
	}
}

// Russian uses the Gregorian calendar with weeks starting on Monday.
func Russian() *Locale {
	return &Locale{
		Name: "ru",
		Months: [12]string{
			"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
			"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
		},
		Weekdays: [7]WeekDay{
			{Name: "воскресенье", Short: "Вс", Weekday: time.Sunday},
			{Name: "понедельник", Short: "Пн", Weekday: time.Monday},
			{Name: "вторник", Short: "Вт", Weekday: time.Tuesday},
			{Name: "среда", Short: "Ср", Weekday: time.Wednesday},
			{Name: "четверг", Short: "Чт", Weekday: time.Thursday},
			{Name: "пятница", Short: "Пт", Weekday: time.Friday},
			{Name: "суббота", Short: "Сб", Weekday: time.Saturday},
		},
		WeekStart: time.Monday,
		Weekend:   []time.Weekday{time.Saturday, time.Sunday},
		Digits:    asciiDigits,
		System:    GregorianSystem{},
		Labels: Labels{
			NextMonth:          "Следующий месяц",
			PreviousMonth:      "Предыдущий месяц",
			OpenMonthSelector:  "Выбрать месяц",
			OpenYearSelector:   "Выбрать год",
			CloseMonthSelector: "Закрыть выбор месяца",
			CloseYearSelector:  "Закрыть выбор года",
			DefaultPlaceholder: "Выбрать...",
			From:               "с",
			To:                 "по",
		},
	}
}
