package courier

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/xingmcp/toolservers/internal/tools"
)

// Instructions describes the server to MCP clients.
const Instructions = "查询物流轨迹服务，传入快递单号和手机号，获取对应快递的物流轨迹；也可以预估快递送达时间。"

// RegisterTools publishes the courier tools on reg.
func RegisterTools(reg *tools.Registry, c *Client) error {
	return reg.RegisterAll(
		tools.Entry{Tool: createQueryTraceTool(), Handler: handleQueryTrace(c)},
		tools.Entry{Tool: createEstimateTimeTool(), Handler: handleEstimateTime(c)},
	)
}

func createQueryTraceTool() mcp.Tool {
	return mcp.NewTool("query_trace",
		mcp.WithDescription("查询物流轨迹服务，传入快递单号和手机号，获取对应快递的物流轨迹"),
		mcp.WithString("kuaidiNum",
			mcp.Required(),
			mcp.Description("快递单号"),
		),
		mcp.WithString("phone",
			mcp.Description("手机号，当快递单号为SF开头时必填"),
		),
	)
}

func createEstimateTimeTool() mcp.Tool {
	return mcp.NewTool("estimate_time",
		mcp.WithDescription("预估快递送达时间"),
		mcp.WithString("kuaidiCom",
			mcp.Required(),
			mcp.Description("快递公司编码，例如 'shunfeng'"),
		),
		mcp.WithString("fromLoc",
			mcp.Required(),
			mcp.Description("出发地，例如 '广东省深圳市南山区'"),
		),
		mcp.WithString("toLoc",
			mcp.Required(),
			mcp.Description("目的地，例如 '北京市海淀区'"),
		),
		mcp.WithString("orderTime",
			mcp.Description("下单时间，格式 yyyy-MM-dd HH:mm:ss，默认当前时间"),
		),
		mcp.WithString("expType",
			mcp.Required(),
			mcp.Description("业务或产品类型，例如 '标准快递'"),
		),
	)
}

func handleQueryTrace(c *Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		num := tools.GetTrimmedString(request, "kuaidiNum", "")
		if num == "" {
			return tools.ErrorResult("Error: kuaidiNum parameter is required"), nil
		}

		text, err := c.QueryTrace(ctx, num, tools.GetTrimmedString(request, "phone", ""))
		if err != nil {
			return tools.UpstreamErrorResult("查询物流轨迹失败", err), nil
		}
		return tools.TextResult(text), nil
	}
}

func handleEstimateTime(c *Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			KuaidiCom string `json:"kuaidiCom" validate:"required"`
			FromLoc   string `json:"fromLoc" validate:"required"`
			ToLoc     string `json:"toLoc" validate:"required"`
			OrderTime string `json:"orderTime" validate:"omitempty,datetime=2006-01-02 15:04:05"`
			ExpType   string `json:"expType" validate:"required"`
		}
		if err := tools.BindArguments(request, &args); err != nil {
			return tools.ErrorResult("Error: " + err.Error()), nil
		}

		text, err := c.EstimateTime(ctx, EstimateRequest{
			KuaidiCom: args.KuaidiCom,
			From:      args.FromLoc,
			To:        args.ToLoc,
			OrderTime: args.OrderTime,
			ExpType:   args.ExpType,
		})
		if err != nil {
			return tools.UpstreamErrorResult("预估送达时间失败", err), nil
		}
		return tools.TextResult(text), nil
	}
}
