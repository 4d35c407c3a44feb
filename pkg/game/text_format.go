package game

import "fmt"

const timerPrefix = "Time: "

// FormatClock 把秒数格式化为 "m:ss"
// 负数按 0 处理；分钟不补零，超过 60 分钟时继续累加（如 "75:00"）
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// ScoreText 返回 HUD 上的得分文字
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// TimerText 返回 HUD 上的倒计时文字
func TimerText(seconds int) string {
	return timerPrefix + FormatClock(seconds)
}

// FinalScoreText 返回结算面板上的得分文字
func FinalScoreText(score int) string {
	return fmt.Sprintf("Final score: %d", score)
}

// DurationLabel 返回菜单上时长选项的文字
func DurationLabel(minutes int) string {
	if minutes == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", minutes)
}
