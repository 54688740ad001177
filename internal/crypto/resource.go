package crypto

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const referenceDescription = `金融操作建议的参考书籍。在生成投资、交易或资金管理相关建议时，应以此文档内容为依据。`

// RegisterReferenceDocument exposes the PDF at path as a read-only resource.
// The file is read on every request so it can be replaced without a restart.
func RegisterReferenceDocument(s *server.MCPServer, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, "resolve reference document %q", path)
	}
	if _, err := os.Stat(abs); err != nil {
		return errors.Wrapf(err, "reference document %q", abs)
	}

	uri := "file://" + filepath.ToSlash(abs)
	resource := mcp.NewResource(uri, "financial-pdf",
		mcp.WithResourceDescription(referenceDescription),
		mcp.WithMIMEType("application/pdf"),
	)

	s.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := os.ReadFile(abs)
		if err != nil {
			return nil, errors.Wrap(err, "read reference document")
		}
		return []mcp.ResourceContents{
			mcp.BlobResourceContents{
				URI:      uri,
				MIMEType: "application/pdf",
				Blob:     base64.StdEncoding.EncodeToString(data),
			},
		}, nil
	})
	return nil
}
