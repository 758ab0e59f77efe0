// 指示: miu200521358
// Package messages はログ・表示に使うメッセージを提供する。
package messages

// メッセージキー一覧。
const (
	HelpUsageTitle = "使い方"
	HelpUsage      = "mu_vrmanim -rig <fixture.yaml> [-config <animator.yaml>] [-ticks N] [-pose-every N] [-seed N] [-v]"

	MessageRigPathRequired = "リグ定義ファイルを指定してください"
	MessageLoadFailed      = "読み込み失敗"
	MessageAttachFailed    = "リグ接続失敗"
	MessageConfigFailed    = "設定読み込み失敗"
	MessageOutputFailed    = "出力失敗"

	LogRigLoadSuccess     = "リグ読み込み成功: %s bones=%d humanoid=%d"
	LogConfigLoadSuccess  = "設定読み込み成功: %s limits=%d"
	LogAttachSuccess      = "リグ接続: root=%s nodes=%d tracked=%d"
	LogAttachSkipped      = "リグ接続済みのため再構築を省略しました"
	LogAttachFailed       = "リグ接続失敗: %v"
	LogDetach             = "リグ切断: ticks=%d"
	LogPoseRequested      = "新しい姿勢を要求しました: tick=%d"
	LogPoseRetargeted     = "姿勢目標更新: bone=%s destination=%v"
	LogPoseRequestCleared = "姿勢要求を消化しました: tick=%d bones=%d"
	LogGroundFall         = "落下: tick=%d velocity=%.4f rootY=%.4f"
	LogGroundClamp        = "接地補正: tick=%d push=%.4f rootY=%.4f"
	LogWanderTurn         = "往復移動反転: tick=%d x=%.4f vx=%.4f"

	LogWarnMissingLimitEntry    = "可動域未設定のため姿勢対象外: bone=%s"
	LogWarnLimitBoneNotInRig    = "可動域表のボーンがリグにありません: bone=%s"
	LogWarnDegenerateDistance   = "親子が同一位置です: parent=%s child=%s"
	LogWarnDegenerateDirection  = "補助点の方向が求まらないため更新を省略: parent=%s child=%s tick=%d"
	LogWarnGroundBoneMissing    = "接地判定対象のボーンがありません"
	LogDebugMirrorEdgeCandidate = "補助点候補: parent=%s child=%s candidate=%v"
)
