package dialect

// TiDB speaks the MySQL wire and literal syntax.
type TiDB struct {
	*MySQL
}

func NewTiDBDialect() Dialect {
	return &TiDB{
		MySQL: NewMySQLDialect().(*MySQL),
	}
}

func (t *TiDB) Name() string {
	return "tidb"
}
