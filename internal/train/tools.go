package train

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/xingmcp/toolservers/internal/tools"
)

// Instructions describes the server to MCP clients.
const Instructions = `本服务提供中国境内火车票车次列表查询和当前系统时间查询。
查询"今天"或"明天"的车票时，先调用 get_current_system_time 获取当前日期，再调用 query_train_tickets_list。`

const (
	msgIncomplete   = "参数不完整，请确保提供了depStationName、arrStationName、depDate"
	msgBadDate      = "出发日期格式错误，格式必须为yyyy-MM-dd"
	msgStationCodes = "获取火车票城市编码数据失败"
	msgSearchFailed = "获取火车票列表数据失败:"
	msgNoTrains     = "数据为空"
	timeLayout      = "2006-01-02 15:04:05"
)

// RegisterTools publishes the train tools on reg.
func RegisterTools(reg *tools.Registry, c *Client) error {
	return reg.RegisterAll(
		tools.Entry{Tool: createTrainTicketsTool(), Handler: handleTrainTickets(c)},
		tools.Entry{Tool: createSystemTimeTool(), Handler: handleSystemTime(c)},
	)
}

func createTrainTicketsTool() mcp.Tool {
	return mcp.NewTool("query_train_tickets_list",
		mcp.WithDescription("火车票车次列表查询功能，查询指定日期、出发地和目的地之间的火车票信息。"+
			"返回包含车次列表、出发/到达站信息、座位类型及票价等详细信息，提供不同座位类型（商务座/一等座/二等座等）的实时票价。"),
		mcp.WithString("depStationName",
			mcp.Required(),
			mcp.Description("出发火车站名称或者出发城市名称。支持输入火车站全称（如北京西站）或城市名（如北京）"),
		),
		mcp.WithString("arrStationName",
			mcp.Required(),
			mcp.Description("目的地火车站名称或者到达城市名称。支持输入火车站全称（如北京西站）或城市名（如北京）"),
		),
		mcp.WithString("depDate",
			mcp.Required(),
			mcp.Description("出发日期：格式必须为yyyy-MM-dd"),
		),
	)
}

func createSystemTimeTool() mcp.Tool {
	return mcp.NewTool("get_current_system_time",
		mcp.WithDescription("查询当前系统时间，返回格式为 yyyy-MM-dd HH:mm:ss，可用于火车票查询等需要日期的场景。"+
			"例如查询今天北京到上海的火车票，先调用本工具获取日期，再查询车次列表。"),
	)
}

type searchArgs struct {
	DepStationName string `json:"depStationName" validate:"required"`
	ArrStationName string `json:"arrStationName" validate:"required"`
	DepDate        string `json:"depDate" validate:"required,datetime=2006-01-02"`
}

func handleTrainTickets(c *Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args searchArgs
		if err := tools.BindArguments(request, &args); err != nil {
			return tools.ErrorResult(argumentMessage(err)), nil
		}

		logger := tools.LoggerFrom(ctx, nil)

		depCode, arrCode, err := c.ResolveStations(ctx, args.DepStationName, args.ArrStationName)
		if err != nil {
			logger.Warn().Str("dep", args.DepStationName).Str("arr", args.ArrStationName).Str("error", err.Error()).Msg("station lookup failed")
			return tools.ErrorResult(msgStationCodes), nil
		}

		trains, err := c.Search(ctx, depCode, arrCode, args.DepDate)
		if err != nil {
			var searchErr *SearchError
			if errors.As(err, &searchErr) {
				return tools.ErrorResult(msgSearchFailed + searchErr.Message), nil
			}
			return tools.ErrorResult(msgSearchFailed + err.Error()), nil
		}

		if len(trains.Array()) == 0 {
			return tools.TextResult(msgNoTrains), nil
		}

		logger.Debug().Int("trains", len(trains.Array())).Str("date", args.DepDate).Msg("train search finished")
		return tools.JSONResult(Translate(trains, args.DepStationName, args.ArrStationName)), nil
	}
}

// argumentMessage separates a malformed date from missing fields.
func argumentMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "datetime" {
				return msgBadDate
			}
		}
	}
	return msgIncomplete
}

func handleSystemTime(c *Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return tools.TextResult(c.Now().Format(timeLayout)), nil
	}
}
