package train

import (
	"github.com/tidwall/gjson"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record is a localized train entry, keyed in display order.
type Record = *orderedmap.OrderedMap[string, any]

// Translate reshapes the raw trains array into the localized result.
// The query's own station names are echoed back as given.
func Translate(trains gjson.Result, depStationName, arrStationName string) *orderedmap.OrderedMap[string, any] {
	list := make([]Record, 0, len(trains.Array()))
	for _, item := range trains.Array() {
		list = append(list, translateTrain(item))
	}

	out := orderedmap.New[string, any]()
	out.Set("用户查询出发站", depStationName)
	out.Set("用户查询到达站", arrStationName)
	out.Set("车次列表", list)
	return out
}

func translateTrain(item gjson.Result) Record {
	sameDay := "是"
	if item.Get("arrivalDays").Int() > 1 {
		sameDay = "否"
	}

	via, origin := "是经停站", "不是始发站"
	if item.Get("depStationCode").String() == item.Get("startStationCode").String() {
		via, origin = "不是经停站", "是始发站"
	}

	seats := make([]Record, 0)
	item.Get("trainAvs").ForEach(func(_, seat gjson.Result) bool {
		s := orderedmap.New[string, any]()
		s.Set("类型", SeatName(seat.Get("seatClassCode").String()))
		s.Set("价格", seat.Get("price").Value())
		s.Set("余票", seat.Get("num").Value())
		seats = append(seats, s)
		return true
	})

	r := orderedmap.New[string, any]()
	r.Set("是否当日到达", sameDay)
	r.Set("出发火车站是否是经停站", via)
	r.Set("出发火车站是否是始发站", origin)
	r.Set("车次号", item.Get("trainCode").String())
	r.Set("出发车站名称", item.Get("depStationName").String())
	r.Set("出发日期", item.Get("depDate").String())
	r.Set("出发时间", item.Get("depTime").String())
	r.Set("到达车站名称", item.Get("arrStationName").String())
	r.Set("到达日期", item.Get("arrDate").String())
	r.Set("到达时间", item.Get("arrTime").String())
	r.Set("历时小时分钟", item.Get("runTime").String())
	r.Set("座位类型", seats)
	return r
}
