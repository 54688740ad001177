package android

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/xingmcp/toolservers/internal/tools"
)

// Instructions describes the server to MCP clients.
const Instructions = `根据包名和组件名称生成 Android Activity、ViewModel 和 XML Layout 代码模板（ViewBinding + MVVM 结构）。
返回四段文本：Activity 源码、ViewModel 源码、布局 XML、建议的文件路径。`

// RegisterTools publishes the generator tool on reg.
func RegisterTools(reg *tools.Registry, g *Generator) error {
	return reg.Register(createActivityTool(g), handleCreateActivity(g))
}

func createActivityTool(g *Generator) mcp.Tool {
	return mcp.NewTool("create_android_activity",
		mcp.WithDescription("根据指定的包名和组件名称，生成一个包含 Activity、ViewModel 和 XML Layout 的完整代码模板。"),
		mcp.WithString("packageName",
			mcp.Description("Kotlin 包名，默认 "+g.defaults.DefaultPackage),
		),
		mcp.WithString("componentName",
			mcp.Description("组件名称（不含 Activity 后缀），例如 'TestOne'，默认 "+g.defaults.DefaultComponent),
		),
		mcp.WithString("bindingPackage",
			mcp.Description("ViewBinding 生成类所在包名，默认 "+g.defaults.BindingPackage),
		),
	)
}

func handleCreateActivity(g *Generator) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		files, err := g.Generate(Request{
			PackageName:    request.GetString("packageName", ""),
			ComponentName:  request.GetString("componentName", ""),
			BindingPackage: request.GetString("bindingPackage", ""),
		})
		if err != nil {
			return tools.ErrorResult("Error generating templates: " + err.Error()), nil
		}
		return tools.TextResults(files.Activity, files.ViewModel, files.Layout, files.Plan), nil
	}
}
