// 指示: miu200521358
package minteractor

import (
	"fmt"

	"github.com/miu200521358/mu_vrmanim/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_vrmanim/pkg/usecase/port/moutput"
)

// LoadRig はリグ定義を読み込む。
func (uc *RigAnimatorUsecase) LoadRig(rep moutput.IRigReader, path string) (*RigData, error) {
	repo := rep
	if repo == nil {
		repo = uc.rigReader
	}
	if repo == nil {
		return nil, fmt.Errorf("リグ読み込みリポジトリが設定されていません")
	}
	if !repo.CanLoad(path) {
		return nil, fmt.Errorf("読み込めないリグ定義ファイルです: %s", path)
	}
	data, err := repo.LoadRig(path)
	if err != nil {
		return nil, err
	}
	logAnimInfo(messages.LogRigLoadSuccess, path, data.Skeleton.Len(), data.Registry.Len())
	return data, nil
}

// LoadConfig は設定ファイルを読み込み、次回接続時の設定として保持する。
func (uc *RigAnimatorUsecase) LoadConfig(rep moutput.IConfigReader, path string) (*AnimatorConfig, error) {
	repo := rep
	if repo == nil {
		repo = uc.configReader
	}
	if repo == nil {
		return nil, fmt.Errorf("設定読み込みリポジトリが設定されていません")
	}
	if !repo.CanLoad(path) {
		return nil, fmt.Errorf("読み込めない設定ファイルです: %s", path)
	}
	config, err := repo.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("設定ファイルの内容が不正です: %s: %w", path, err)
	}
	uc.SetConfig(config)
	logAnimInfo(messages.LogConfigLoadSuccess, path, config.Limits.Len())
	return config, nil
}
