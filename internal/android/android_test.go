package android

import (
	"strings"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xingmcp/toolservers/internal/common"
	"github.com/xingmcp/toolservers/internal/config"
	"github.com/xingmcp/toolservers/internal/tools"
	"github.com/xingmcp/toolservers/internal/tools/toolstest"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := NewGenerator(config.NewDefaultConfig().Android)
	require.NoError(t, err)
	return g
}

func TestDerive_DeterministicNames(t *testing.T) {
	g := newTestGenerator(t)

	names := g.Derive(Request{PackageName: "com.example.app", ComponentName: "Foo"})
	assert.Equal(t, "FooActivity", names.ActivityClass)
	assert.Equal(t, "FooViewModel", names.ViewModelClass)
	assert.Equal(t, "activity_foo", names.LayoutName)
	assert.Equal(t, "ActivityFooBinding", names.BindingClass)
	assert.Equal(t, "com.mgx.mathwallet.databinding.ActivityFooBinding", names.BindingImport)
}

func TestGenerate_Repeatable(t *testing.T) {
	g := newTestGenerator(t)
	req := Request{PackageName: "com.example.app", ComponentName: "Foo", BindingPackage: "com.example.app.databinding"}

	first, err := g.Generate(req)
	require.NoError(t, err)
	second, err := g.Generate(req)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.True(t, strings.HasPrefix(first.Activity, "package com.example.app\n"))
	assert.Contains(t, first.Activity, "import com.example.app.databinding.ActivityFooBinding")
	assert.Contains(t, first.Activity, "class FooActivity : BaseLockActivity<FooViewModel, ActivityFooBinding>()")
	assert.Contains(t, first.Activity, "return R.layout.activity_foo")

	assert.Contains(t, first.ViewModel, "package com.example.app")
	assert.Contains(t, first.ViewModel, "class FooViewModel : BaseViewModel()")

	assert.Contains(t, first.Layout, `type="com.example.app.FooViewModel"`)
	assert.NotContains(t, first.Layout, "{{")

	assert.Contains(t, first.Plan, "app/src/main/java/com/example/app/FooActivity.kt")
	assert.Contains(t, first.Plan, "app/src/main/java/com/example/app/FooViewModel.kt")
	assert.Contains(t, first.Plan, "app/src/main/res/layout/activity_foo.xml")
}

func TestGenerate_Defaults(t *testing.T) {
	g := newTestGenerator(t)

	files, err := g.Generate(Request{ComponentName: "  "})
	require.NoError(t, err)
	assert.Equal(t, "com.mathwallet.app", files.Package)
	assert.Equal(t, "ExampleActivity", files.ActivityClass)
	assert.Equal(t, "activity_example", files.LayoutName)
}

func TestCreateActivityTool(t *testing.T) {
	s := mcpserver.NewMCPServer("android-test", "1.0.0", mcpserver.WithToolCapabilities(true))
	reg := tools.NewRegistry(s, common.NewSilentLogger())
	require.NoError(t, RegisterTools(reg, newTestGenerator(t)))

	assert.Equal(t, []string{"create_android_activity"}, toolstest.ToolNames(t, s))

	result := toolstest.CallTool(t, s, "create_android_activity", map[string]interface{}{
		"packageName":   "com.example.app",
		"componentName": "TestOne",
	})
	require.False(t, result.IsError)
	require.Len(t, result.Content, 4)

	text := toolstest.Text(t, result)
	assert.Contains(t, text, "class TestOneActivity")
	assert.Contains(t, text, "class TestOneViewModel")
	assert.Contains(t, text, "activity_testone")

	result = toolstest.CallTool(t, s, "create_android_activity", map[string]interface{}{})
	require.False(t, result.IsError)
	assert.Contains(t, toolstest.Text(t, result), "class ExampleActivity")
}
