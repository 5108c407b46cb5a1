package game

// Player-facing messages. The bot speaks Russian, matching the rest of the
// game content in configs/catalog.json.
const (
	MsgUnknownCommand   = "❓ Неизвестная команда. Напиши /help, чтобы увидеть список."
	MsgBossNotReady     = "🔒 Боссы пока не замечают тебя. Продолжай охоту и набирайся сил."
	MsgEquipUsage       = "Укажи название предмета: /equip Железный меч"
	MsgUnknownItem      = "❓ Такого предмета не существует."
	MsgNotEquippable    = "🚫 Этот предмет нельзя экипировать."
	MsgNoLootBoxes      = "📭 У тебя нет Сундуков воспоминаний. Их роняют существа и боссы."
	MsgLeaderboardEmpty = "🏆 Хроники подвала пока пусты. Стань первым."

	MsgHelp = `📖 Команды подвала:
/status — твой уровень, рассудок, опыт и золото
/hunt — охота на существо: опыт, золото, шанс добычи
/boss — вызов сильнейшего доступного босса
/meditate — медитация: немного золота, раз в час
/equip <предмет> — экипировать оружие или броню
/open — открыть Сундук воспоминаний
/leaderboard — пятёрка сильнейших
/help — это сообщение`
)
