package settings

// Default returns the compiled-in settings of the customer management application.
func Default() *Settings {
	s, err := New(defaultAppName, defaultTestUser, defaultUserTypes, defaultFunctions, defaultColumnNames)
	if err != nil {
		panic(err)
	}
	return s
}

const (
	defaultAppName  = "顧客管理システム"
	defaultTestUser = "システム管理者"
)

var defaultUserTypes = []UserType{
	{ID: "system_admin", Name: "システム管理者"},
	{ID: "admin", Name: "管理者"},
	{ID: "manager", Name: "マネージャー"},
	{ID: "sales", Name: "営業"},
	{ID: "sales_limited", Name: "営業（担当のみ）"},
	{ID: "accounting", Name: "経理"},
	{ID: "accounting_limited", Name: "経理（担当のみ）"},
	{ID: "support", Name: "サポート"},
	{ID: "support_limited", Name: "サポート（担当のみ）"},
	{ID: "place_manager", Name: "設置先管理者"},
	{ID: "partner", Name: "パートナー"},
	{ID: "read_only", Name: "閲覧のみ"},
}

var defaultFunctions = []Function{
	{ID: "customers", Name: "顧客", LeftMenu: true},
	{ID: "customer_managers", Name: "顧客担当者", CustomerTab: true},
	{ID: "places", Name: "設置先", LeftMenu: true, CustomerTab: true},
	{ID: "place_managers", Name: "設置先担当者", PlaceTab: true},
	{ID: "contracts", Name: "契約", LeftMenu: true, CustomerTab: true, PlaceTab: true},
	{ID: "invoices", Name: "請求", LeftMenu: true, CustomerTab: true},
	{ID: "users", Name: "ユーザー", LeftMenu: true},
	{ID: "audit_logs", Name: "操作履歴"},
}

var defaultColumnNames = map[string]string{
	"id":              "ID",
	"name":            "顧客名",
	"kana":            "顧客名（かな）",
	"note":            "備考",
	"created_user_id": "作成者",
	"updated_user_id": "更新者",
	"created_at":      "作成日時",
	"updated_at":      "更新日時",
	"supplier":        "直接取引先",
	"cancelled":       "解約済み",
}
