package seeders

// Демонстрационные данные для пустой базы.

var teamsData = []struct {
	Name           string
	Description    string
	Icon           string
	Specialization string
}{
	{Name: "Механики", Description: "Обслуживание станков и механики", Icon: "🔧", Specialization: "mechanics"},
	{Name: "Электрики", Description: "Электрооборудование и проводка", Icon: "⚡", Specialization: "electrical"},
	{Name: "IT-поддержка", Description: "Компьютеры и сетевое оборудование", Icon: "💻", Specialization: "it"},
}

var usersData = []struct {
	Name  string
	Email string
	Phone string
	Role  string
	Team  string
}{
	{Name: "Фаррух Рахимов", Email: "manager@maintenance.local", Phone: "+992111111111", Role: "manager", Team: ""},
	{Name: "Сергей Иванов", Email: "tech-mech@maintenance.local", Phone: "+992222222222", Role: "technician", Team: "Механики"},
	{Name: "Алишер Каримов", Email: "tech-el@maintenance.local", Phone: "+992333333333", Role: "technician", Team: "Электрики"},
	{Name: "Анна Петрова", Email: "user@maintenance.local", Phone: "+992444444444", Role: "user", Team: ""},
}

var requestsData = []struct {
	Type          string
	Subject       string
	Description   string
	Serial        string
	Priority      string
	Creator       string
	Team          string
	ScheduledDate string
}{
	{Type: "corrective", Subject: "Станок не запускается", Description: "При включении срабатывает защита", Serial: "TV-320-001", Priority: "high", Creator: "user@maintenance.local", Team: "Механики"},
	{Type: "corrective", Subject: "Утечка воздуха в компрессоре", Description: "Падает давление в магистрали", Serial: "RMZ-VK25-014", Priority: "medium", Creator: "user@maintenance.local", Team: "Механики"},
	{Type: "preventive", Subject: "Плановый осмотр щита", Description: "Протяжка контактов, замер сопротивления изоляции", Serial: "SHR-86-007", Priority: "low", Creator: "manager@maintenance.local", Team: "Электрики", ScheduledDate: "2026-09-15"},
	{Type: "preventive", Subject: "Чистка сервера и замена термопасты", Description: "", Serial: "DPE-R740-112", Priority: "low", Creator: "manager@maintenance.local", Team: "IT-поддержка", ScheduledDate: "2026-10-01"},
}

var equipmentsData = []struct {
	Name         string
	SerialNumber string
	Category     string
	Department   string
	Location     string
	Team         string
}{
	{Name: "Токарный станок ТВ-320", SerialNumber: "TV-320-001", Category: "станки", Department: "производство", Location: "Цех 1", Team: "Механики"},
	{Name: "Компрессор Remeza ВК-25", SerialNumber: "RMZ-VK25-014", Category: "пневматика", Department: "производство", Location: "Цех 2", Team: "Механики"},
	{Name: "Щит распределительный ЩР-86", SerialNumber: "SHR-86-007", Category: "электрика", Department: "производство", Location: "Цех 1", Team: "Электрики"},
	{Name: "Сервер Dell PowerEdge R740", SerialNumber: "DPE-R740-112", Category: "серверы", Department: "офис", Location: "Серверная", Team: "IT-поддержка"},
}
