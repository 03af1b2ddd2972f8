package service

const (
	ActionTypeWindow = "ir.actions.act_window"

	ModelPurchaseOrder = "purchase.order"
	ModelSalesOrder    = "sale.order"

	ViewModeForm = "form"
	ViewModeList = "list,form"

	TargetCurrent = "current"
)

// Condition 过滤条件，形如 ["id", "in", [...]]
type Condition []interface{}

// Action 导航指令，由前端解释执行
type Action struct {
	Type     string      `json:"type"`
	Name     string      `json:"name"`
	ResModel string      `json:"res_model"`
	ViewMode string      `json:"view_mode"`
	ResID    string      `json:"res_id,omitempty"`
	Domain   []Condition `json:"domain,omitempty"`
	Target   string      `json:"target"`
}

func formAction(name, model, id string) *Action {
	return &Action{
		Type:     ActionTypeWindow,
		Name:     name,
		ResModel: model,
		ViewMode: ViewModeForm,
		ResID:    id,
		Target:   TargetCurrent,
	}
}

func listAction(name, model string, ids []string) *Action {
	return &Action{
		Type:     ActionTypeWindow,
		Name:     name,
		ResModel: model,
		ViewMode: ViewModeList,
		Domain:   []Condition{{"id", "in", ids}},
		Target:   TargetCurrent,
	}
}
