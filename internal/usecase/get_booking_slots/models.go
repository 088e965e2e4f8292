package get_booking_slots

import "time"

// Request модель запроса на получение слотов бронирования
type Request struct {
	ProductID int64      // ID продукта каталога
	Date      *time.Time // Дата слотов; nil = сегодня в часовом поясе сервиса
}

// Response модель ответа со списком слотов
type Response struct {
	ProductID int64     // ID продукта каталога
	Date      time.Time // Дата, на которую рассчитаны слоты (полночь)
	Slots     []Slot    // Слоты в порядке шаблонов и времени начала
}

// Slot модель слота для отображения
type Slot struct {
	From      string // Начало в 12-часовом формате, например "09:40 AM"
	To        string // Конец в 12-часовом формате
	Timestamp string // "<from>-<to>" в unix-секундах
	Booked    int    // Количество уже забронированных мест
}
