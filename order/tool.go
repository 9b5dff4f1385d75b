package order

import (
	"fmt"

	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"
)

const (
	// ToolName is the single extraction function declared to the
	// completion provider.
	ToolName        = "create_hookah_order"
	toolDescription = "Creates a hookah catering order after all required information has been collected from the user."
)

// ToolInfo builds the declared extraction schema. All six Record fields are
// mandatory.
func ToolInfo() (*schema.ToolInfo, error) {
	info, err := utils.GoStruct2ToolInfo[Record](ToolName, toolDescription)
	if err != nil {
		return nil, fmt.Errorf("build extraction tool info: %w", err)
	}
	return info, nil
}
