package store

import (
	"os"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/go-xorm/xorm"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"xorm.io/xorm/names"

	"sortdemo/src/sort"
)

var ErrUnsupportedScheme = errors.New("unsupported meta url scheme")

// SortRun is one recorded invocation of the sort command.
type SortRun struct {
	Id          int64     `xorm:"pk autoincr"`
	Input       []int     `xorm:"text notnull"`
	Output      []int     `xorm:"text notnull"`
	Passes      int       `xorm:"notnull"`
	Comparisons int       `xorm:"notnull"`
	Swaps       int       `xorm:"notnull"`
	Created     time.Time `xorm:"created"`
}

// ParseMetaURL turns a META-URL such as
// mysql://user:pass@(127.0.0.1:3306)/sortdemo or sqlite3:///tmp/sortdemo.db
// into a driver name and a DSN for that driver.
func ParseMetaURL(uri string) (driver, dsn string, err error) {
	p := strings.Index(uri, "://")
	if p < 0 {
		return "", "", errors.Wrapf(ErrUnsupportedScheme, "%q has no scheme", uri)
	}
	driver, dsn = uri[:p], uri[p+3:]
	switch driver {
	case "mysql":
		return driver, mysqlDSN(dsn), nil
	case "sqlite3":
		if dsn == "" {
			return "", "", errors.New("sqlite3 meta url needs a path")
		}
		return driver, dsn, nil
	default:
		return "", "", errors.Wrap(ErrUnsupportedScheme, driver)
	}
}

func mysqlDSN(addr string) string {
	if at := strings.LastIndex(addr, "@"); at > 0 {
		cred := addr[:at]
		if user := strings.TrimSuffix(cred, ":"); !strings.Contains(user, ":") {
			if pass := os.Getenv("META_PASSWORD"); pass != "" {
				cred = user + ":" + pass
			}
		}
		addr = cred + addr[at:]
	}
	addr = strings.Replace(addr, "@(", "@tcp(", 1)
	if !strings.Contains(addr, "?") {
		addr += "?charset=utf8mb4&parseTime=true"
	}
	return addr
}

// Open connects to the database named by the META-URL and makes sure the
// sd_sort_run table exists.
func Open(uri string) (*xorm.Engine, error) {
	driver, dsn, err := ParseMetaURL(uri)
	if err != nil {
		return nil, err
	}
	engine, err := xorm.NewEngine(driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "create %s engine", driver)
	}
	if err = engine.Ping(); err != nil {
		engine.Close()
		return nil, errors.Wrapf(err, "ping %s", driver)
	}

	engine.SetTableMapper(names.NewPrefixMapper(engine.GetTableMapper(), "sd_"))

	if err = engine.Sync2(new(SortRun)); err != nil {
		engine.Close()
		return nil, errors.Wrap(err, "sync tables")
	}
	return engine, nil
}

// NewRun copies input and output so the caller can keep mutating its slices.
func NewRun(input, output []int, st sort.Stats) *SortRun {
	return &SortRun{
		Input:       append(make([]int, 0, len(input)), input...),
		Output:      append(make([]int, 0, len(output)), output...),
		Passes:      st.Passes,
		Comparisons: st.Comparisons,
		Swaps:       st.Swaps,
	}
}

func Record(engine *xorm.Engine, run *SortRun) error {
	if _, err := engine.Insert(run); err != nil {
		return errors.Wrap(err, "insert sort run")
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func Recent(engine *xorm.Engine, limit int) ([]SortRun, error) {
	var runs []SortRun
	s := engine.Desc("id")
	if limit > 0 {
		s = s.Limit(limit, 0)
	}
	if err := s.Find(&runs); err != nil {
		return nil, errors.Wrap(err, "list sort runs")
	}
	return runs, nil
}
