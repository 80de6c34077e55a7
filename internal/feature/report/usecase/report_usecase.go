// Package usecase はreportフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"expense_backend/internal/feature/report/domain/entity"
)

// ReportRepository は月次集計クエリを抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type ReportRepository interface {
	// Monthly は指定されたユーザー・年月の支出合計と件数を返します。
	// 該当する支出がない場合も、合計0.00・件数0のレポートを返します。
	Monthly(ctx context.Context, userID uint, year, month int) (*entity.MonthlyReport, error)

	// MonthlyByCategory は指定されたユーザー・年月の支出をカテゴリ別に
	// 集計して返します。該当する支出が1件以上あるカテゴリのみが含まれます。
	MonthlyByCategory(ctx context.Context, userID uint, year, month int) ([]entity.CategorySummary, error)
}

// ReportUsecase は月次レポートのビジネスロジックを実装します。
type ReportUsecase struct {
	reports ReportRepository
}

// NewReportUsecase はReportUsecaseの新しいインスタンスを生成します。
func NewReportUsecase(reports ReportRepository) *ReportUsecase {
	return &ReportUsecase{reports: reports}
}

// Monthly は指定された年月の月次サマリーを返します。
// 年月の範囲（2000-2100年、1-12月）はトランスポート層で検証済みです。
func (u *ReportUsecase) Monthly(ctx context.Context, userID uint, year, month int) (*entity.MonthlyReport, error) {
	return u.reports.Monthly(ctx, userID, year, month)
}

// MonthlyByCategory は指定された年月のカテゴリ別内訳を返します。
func (u *ReportUsecase) MonthlyByCategory(ctx context.Context, userID uint, year, month int) ([]entity.CategorySummary, error) {
	return u.reports.MonthlyByCategory(ctx, userID, year, month)
}
