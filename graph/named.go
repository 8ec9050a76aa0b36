package graph

// NamedParameterSpec is what a binder knows about a named parameter.
type NamedParameterSpec struct {
	Name string
	// ValueType is the full name of the value's type.
	ValueType string
	// Default is the textual default value; HasDefault distinguishes an
	// empty default from none.
	Default    string
	HasDefault bool
	// ShortName is an optional command-line style alias.
	ShortName     string
	Documentation string
}

// NamedParameterNode is a named configuration value consumed by constructors.
type NamedParameterNode struct {
	baseNode

	valueType  string
	def        string
	hasDefault bool
	shortName  string
	doc        string
}

func (np *NamedParameterNode) Kind() NodeKind { return KindNamedParameter }

func (np *NamedParameterNode) ValueType() string { return np.valueType }

// DefaultValue returns the declared default, if any.
func (np *NamedParameterNode) DefaultValue() (string, bool) { return np.def, np.hasDefault }

func (np *NamedParameterNode) ShortName() string { return np.shortName }

func (np *NamedParameterNode) Documentation() string { return np.doc }

func (np *NamedParameterNode) String() string {
	return np.valueType + " @Parameter(" + np.fullName + ")"
}
