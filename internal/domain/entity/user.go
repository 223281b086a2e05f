package entity

// UserState состояние пользователя в диалоге
type UserState string

const (
	StateMainMenu      UserState = "main_menu"      // В главном меню
	StateAwaitingFrame UserState = "awaiting_frame" // Ожидание файла с кадром
	StateProcessing    UserState = "processing"     // Обработка кадра
)

// User представляет пользователя бота
type User struct {
	ID     int64       // Telegram User ID
	ChatID int64       // Telegram Chat ID
	State  UserState   // Текущее состояние пользователя
	Format FrameFormat // Формат присылаемых кадров, если пусто, определяется по расширению файла
}

// NewUser создаёт нового пользователя с начальным состоянием
func NewUser(userID, chatID int64) *User {
	return &User{
		ID:     userID,
		ChatID: chatID,
		State:  StateMainMenu,
	}
}

// SetState обновляет состояние пользователя
func (u *User) SetState(state UserState) {
	u.State = state
}

// FormatFor выбирает формат для файла: явно заданный пользователем или по расширению.
func (u *User) FormatFor(filename string) (FrameFormat, bool) {
	if u.Format != "" {
		return u.Format, true
	}
	return FormatFromFilename(filename)
}
