package telegram

// Scripted copy of the applicant flow. The instruction and too-long texts ask
// for 60 seconds while the validator ceiling defaults to 90; both values are
// part of the approved script.
const (
	introText = "👋 Привет!\nУже загружаю приветствие от нанимающего менеджера.\nЭто займет несколько секунд."

	managerVideoCaption = "Держи!"

	watchedQuestionText = "Тебе понравилось видео?"
	likedText           = "Отлично!⚡"
	dislikedText        = "Понятно. Спасибо за честность!😊"
	notSeenText         = "Извиняюсь за технические проблемы. Пошел ремонтироваться 😊"

	shootQuestionText = "🎥 Хочешь записать свое видео в ответ? \nЯ перешлю его напрямую нанимающему менеджеру в обход HR. \nЭто ускорит назначение интервью."

	instructionsText = "📹Запиши видео прямо здесь в чате или загрузи готовое.\n" +
		"Перед отправкой менеджеру я спрошу разрешения, поэтому можно делать сколько угодно дублей)\n\n" +
		"👉 Не знаешь что сказать вот примерный план:\n" +
		"- Поздоровайся.\n" +
		"- Скажи, почему тебе интересна эта компания или вакансия.\n" +
		"- Коротко объясни, почему ты лучший кандидат.\n\n" +
		"Видео должно быть коротким (максимум 60 секунд), простым и «продающим».\n" +
		"И главное — не забудь улыбнуться 🙂"

	whyQuestionText = "Пожалуйста, расскажи почему.😊"
	thanksText      = "Спасибо за обратную связь!\nМы это учтем.\nХорошего дня! 😊"

	confirmText = "Использовать это видео для отправки менеджеру или хочешь записать другое?"
	privacyText = "Нажимая кнопку, вы даёте согласие на обработку персональных данных. Ссылка на политику конфиденциальности: https://hrvibe.ru/page80523236.html"

	videoSavedText = "🚀Поздравляю, я отправил видео руководителю.\nРуководитель посмотрит его и ответит напрямую, если ваши вайбы совпали.\nХорошего дня!😊"

	notAVideoText      = "Не удалось определить видео. Пришли, пожалуйста, именно видео."
	tooLongText        = "Видео слишком длиннее. Пожалуйста, перезапиши более короткое до 60 секунд."
	tooLargeText       = "Видео больше максимального размера 50 MB. Пожалуйста, запиши кружочек, он точно меньше 50 MB."
	noPendingText      = "Нет видео для сохранения. Пришли заново, пожалуйста."
	downloadFailedText = "Ошибка при скачивании видео. Пришли заново, пожалуйста."
	rerecordText       = "Хорошо, запиши новое видео и пришли его сюда, пожалуйста."
)

// Callback tokens. The state machine only defines transitions for these; any
// other payload is acknowledged and dropped.
const (
	cbVideoYes     = "video_yes"
	cbVideoNo      = "video_no"
	cbVideoNotSeen = "video_not_seen"

	cbShootYes   = "yes"
	cbShootMaybe = "maybe"
	cbShootNo    = "no"

	cbConfirmYes = "confirm_yes_privacy"
	cbConfirmNo  = "confirm_no"

	cbPrivacyYes = "privacy_confirm_yes"
	cbPrivacyNo  = "privacy_confirm_no"

	cbReasonCompany  = "reason_no_company"
	cbReasonAwkward  = "reason_no_awkward"
	cbReasonDontKnow = "reason_no_dont_know"
	cbReasonPrivacy  = "reason_no_privacy"
	cbReasonOther    = "reason_no_other"
)
