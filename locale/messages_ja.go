package locale

var messagesJa = map[string]string{
	SectionDisplay:    "表示",
	SectionDelete:     "削除",
	SectionValidation: "入力チェック",

	TitleCreate:             "登録",
	TitleUpdate:             "更新",
	TitleDeleteConfirmModal: "削除確認モーダル",
	TitleDeleteCancel:       "削除キャンセル",
	TitleDelete:             "削除",
	TitleCondition:          "%[1]s（%[2]s）",

	DisplayIndex:     "一覧",
	DisplayNew:       "新規登録",
	DisplayDuplicate: "複製",
	DisplayEdit:      "編集",
	DisplayShow:      "閲覧",

	ButtonNew:       "新規登録",
	ButtonCreate:    "登録",
	ButtonDuplicate: "複製",
	ButtonEdit:      "編集",
	ButtonUpdate:    "更新",
	ButtonCancel:    "キャンセル",
	ButtonDelete:    "削除",

	PreconditionLogin:            "%[1]sに%[2]sでログインしていること。",
	PreconditionDashboard:        "ダッシュボードに遷移していること。",
	PreconditionScreen:           "%[1]sの%[2]s画面に遷移していること。",
	PreconditionCustomerShow:     "顧客の閲覧画面に遷移していること。",
	PreconditionPlaceShow:        "設置先の閲覧画面に遷移していること。",
	PreconditionBeforeCreateData: "テストデータが事前に登録されていること。",
	PreconditionDisplayedScreen:  "%[1]sの%[2]s画面を表示していること。",

	StepClickLeftMenu:     "%[1]d. 左メニューの「%[2]s」をクリックする。",
	StepClickTabMenu:      "%[1]d. 「%[2]s」タブをクリックする。",
	StepClickRecord:       "%[1]d. 一覧のレコードをクリックする。",
	StepClickButton:       "%[1]d. 「%[2]s」ボタンをクリックする。",
	StepInput:             "%[1]d. テストデータを入力し、「%[2]s」ボタンをクリックする。",
	StepClickDeleteButton: "%[1]d. 「削除」ボタンをクリックする。",
	StepClickModalCancel:  "%[1]d. 削除確認モーダルの「キャンセル」ボタンをクリックする。",
	StepClickModalDelete:  "%[1]d. 削除確認モーダルの「削除」ボタンをクリックする。",
	StepReloadIndex:       "%[1]d. %[2]sの一覧画面を表示する。",
	StepSetCondition:      "%[1]d. 「%[2]s」の状態にする。",
	StepLeaveEmpty:        "%[1]d. 「%[2]s」を未入力にする。",

	ResultNotLeftMenu:             "%[1]d. メニューに「%[2]s」が表示されないこと。",
	ResultNotExistButton:          "%[1]d. 「%[2]s」ボタンが存在しないこと。",
	ResultMoveDisplay:             "%[1]d. %[2]sの%[3]s画面に遷移すること。",
	ResultInputSuccess:            "%[1]d. 「%[2]s」ボタン押下で%[3]sが保存されること。",
	ResultCreateInputCheck:        "%[1]d. 登録した%[2]sに入力内容が反映されていること。",
	ResultDuplicateInputCheck:     "%[1]d. 複製元の内容を引き継いだ%[2]sが登録されていること。",
	ResultUpdateInputCheck:        "%[1]d. 更新した%[2]sに入力内容が反映されていること。",
	ResultOpenDeleteConfirmModal:  "%[1]d. 削除確認モーダルが表示されること。",
	ResultCloseDeleteConfirmModal: "%[1]d. 削除確認モーダルが閉じること。",
	ResultDeleteCancel:            "%[1]d. %[2]sが削除されていないこと。",
	ResultDeleteSuccess:           "%[1]d. %[2]sが削除されること。",
	ResultInputError:              "%[1]d. 「%[2]s」に入力エラーが表示されること。",
	ResultSubmitSuccess:           "%[1]d. エラーが表示されず%[2]sが保存されること。",

	NoteTestData: "%[1]s：%[2]s",

	HeaderSection:      "セクション",
	HeaderTitle:        "タイトル",
	HeaderPrecondition: "前提条件",
	HeaderNotes:        "備考",
	HeaderSteps:        "手順",
	HeaderExpected:     "期待する結果",
	HeaderVersion:      "対応バージョン",

	HTMLTitle:      "テスト仕様書",
	ConvertSuccess: "%[1]s に変換しました。",

	SchemaPhysicalName: "物理カラム名",
	SchemaLogicalName:  "論理カラム名",
	SchemaType:         "型",
	SchemaLength:       "長さ",
	SchemaNotNull:      "NOT NULL",
	SchemaPrimaryKey:   "Primary Key",
	SchemaRemarks:      "備考",
	SchemaYes:          "○",
	SchemaNone:         "ー",

	UsageMissingFunction: "機能名を指定してください（--f）",
	UsageMissingDisplay:  "画面名を指定してください（--d）",
	UsageMissingVersion:  "バージョンを指定してください（--v）",
	UsageInvalidDisplay:  "画面名「%[1]s」は指定できません（一覧、新規登録、複製、編集、閲覧）",
	UsageUnknownFunction: "機能名「%[1]s」は定義されていません",
}
