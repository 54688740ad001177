package train

// seatNames maps seat class codes to their display names.
var seatNames = map[string]string{
	"9": "商务座",
	"M": "一等座",
	"O": "二等座",
	"4": "软卧",
	"3": "硬卧",
	"1": "硬座",
	"W": "无座",
}

// SeatName returns the display name for a seat class code, or "" for an unknown code.
func SeatName(code string) string {
	return seatNames[code]
}
