package game

import "github.com/decker502/cleandrop/pkg/config"

// EndMessage 返回结算画面文案
func EndMessage(result RoundResult, difficulty string, messages *config.MessageConfig) string {
	if messages == nil {
		messages = config.DefaultMessageConfig()
	}
	if result == ResultWin {
		return messages.WinMessage(difficulty)
	}
	return messages.LoseMessage
}

// Headline 返回结算画面标题
func Headline(result RoundResult) string {
	if result == ResultWin {
		return "You filled the bucket!"
	}
	return "The bucket ran dry"
}
