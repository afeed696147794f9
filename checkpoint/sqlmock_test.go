package checkpoint

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// TestGormRepository_Save_EmitsExpectedSQL asserts the persisted SQL shape
// against a mocked mysql connection, without a live database (mirroring
// the teacher's sqlmock-based repository tests).
func TestGormRepository_Save_EmitsExpectedSQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	dialector := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	})
	db, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)

	repo := NewGormRepository(db)
	sum := testSummary()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `transition_rows`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO `runs`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `transition_rows`").
		WillReturnResult(sqlmock.NewResult(1, int64(len(sum.Trace))))
	mock.ExpectCommit()

	err = repo.Save(context.Background(), "run-1", sum)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
