package event

import (
	"fmt"
	"time"

	"github.com/marchelxyz/calendar/server/timezone"
)

// extractorSystemPrompt fixes the assistant's role and reinforces JSON-only output.
const extractorSystemPrompt = "Ты помощник для создания событий в календаре. Всегда возвращай только валидный JSON."

// eventPromptTemplate carries the extraction instructions. The worked examples
// anchor the model to the exact schema and date arithmetic expected; the
// embedded current datetime is the model's only source of "now".
const eventPromptTemplate = `Ты помощник для создания событий в календаре. Пользователь отправил голосовое сообщение, которое было транскрибировано в текст.

Текущая дата и время: %s (часовой пояс: %s)

Текст пользователя: "%s"

Твоя задача - извлечь из текста информацию о событии и вернуть JSON со следующей структурой:
{
    "action": "create_event" | "delete_event" | "update_event",
    "summary": "Название события",
    "start_datetime": "YYYY-MM-DDTHH:MM:SS",
    "duration_minutes": 60,
    "description": "Описание (опционально)"
}

Правила:
1. Если пользователь говорит "завтра", "послезавтра", "через 3 дня" - вычисли правильную дату относительно текущей даты
2. Если указано время без даты (например, "в 3 часа дня"), используй сегодняшнюю дату, если событие еще не прошло, иначе завтрашнюю
3. Если время не указано, используй 12:00 по умолчанию
4. Если длительность не указана, используй 60 минут по умолчанию
5. Если пользователь просит удалить или изменить событие, укажи action соответственно
6. Всегда возвращай валидный JSON, без дополнительного текста

Примеры:
- "Поставь встречу с клиентом на завтра в 15:00" -> {"action": "create_event", "summary": "Встреча с клиентом", "start_datetime": "2025-01-15T15:00:00", "duration_minutes": 60}
- "Созвон с командой послезавтра в 10 утра на час" -> {"action": "create_event", "summary": "Созвон с командой", "start_datetime": "2025-01-16T10:00:00", "duration_minutes": 60}
- "Напомни мне про презентацию через 2 дня в 14:30" -> {"action": "create_event", "summary": "Презентация", "start_datetime": "2025-01-16T14:30:00", "duration_minutes": 60}

Верни только JSON, без дополнительных комментариев:`

// buildPrompt renders the extraction prompt for the given input text,
// anchored to the current time in the configured timezone.
func buildPrompt(text string, now time.Time, loc *time.Location) string {
	return fmt.Sprintf(eventPromptTemplate, timezone.FormatPromptTime(now), loc.String(), text)
}
