// Package screens holds the presentation declarations for the back-office
// UI: plain data describing which fields and columns each screen shows and
// which server-side method every button triggers. The rendering collaborator
// consumes these as configuration; no behavior lives here.
package screens

// FieldKind is the input kind of a form field.
type FieldKind string

const (
	FieldText   FieldKind = "text"
	FieldHidden FieldKind = "hidden"
)

// Field describes one form input.
type Field struct {
	Name        string    `json:"name"`
	Label       string    `json:"label,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	Kind        FieldKind `json:"kind"`
	Required    bool      `json:"required"`
	// ValueFrom names the record attribute that prefills the field on
	// redisplay or async edit.
	ValueFrom string `json:"valueFrom,omitempty"`
}

// Column describes one table column.
type Column struct {
	Name       string `json:"name"`
	Label      string `json:"label"`
	Sortable   bool   `json:"sortable,omitempty"`
	Filterable bool   `json:"filterable,omitempty"`
}

// Action describes a button and the server-side method it triggers.
type Action struct {
	Label  string `json:"label"`
	Method string `json:"method"`
	Color  string `json:"color,omitempty"`
	// Modal names the modal the button opens before submitting.
	Modal string `json:"modal,omitempty"`
	// Confirm carries the confirmation prompt shown before submitting. The
	// gate is enforced by the UI, never by the server.
	Confirm string `json:"confirm,omitempty"`
}

// Modal describes a dialog holding a form, optionally prefilled through an
// async fetch method.
type Modal struct {
	Name        string  `json:"name"`
	Title       string  `json:"title"`
	Fields      []Field `json:"fields"`
	AsyncMethod string  `json:"asyncMethod,omitempty"`
}

// Screen is one declared back-office view.
type Screen struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Resource    string   `json:"resource"`
	PageSize    int      `json:"pageSize,omitempty"`
	Fields      []Field  `json:"fields,omitempty"`
	Columns     []Column `json:"columns,omitempty"`
	CommandBar  []Action `json:"commandBar,omitempty"`
	RowActions  []Action `json:"rowActions,omitempty"`
	Modals      []Modal  `json:"modals,omitempty"`
	Submit      *Action  `json:"submit,omitempty"`
}

func userInformationFields(prefix string) []Field {
	return []Field{
		{Name: prefix + "name", Label: "Name", Placeholder: "Enter name", Kind: FieldText, Required: true, ValueFrom: "name"},
		{Name: prefix + "email", Label: "Email", Placeholder: "Enter email", Kind: FieldText, Required: true, ValueFrom: "email"},
		{Name: prefix + "phone", Label: "Phone", Placeholder: "Enter phone number", Kind: FieldText, Required: true, ValueFrom: "phone"},
		{Name: prefix + "address", Label: "Address", Placeholder: "Enter address", Kind: FieldText, Required: true, ValueFrom: "address"},
	}
}

// Definitions returns every declared screen keyed by name.
func Definitions() map[string]Screen {
	createUser := Screen{
		Name:        "create-user",
		Title:       "Create New User",
		Description: "Fill in the user details to create a new user.",
		Resource:    "user_information",
		Fields:      userInformationFields(""),
		Submit:      &Action{Label: "Create User", Method: "createUser", Color: "success"},
	}

	editUser := Screen{
		Name:        "edit-user",
		Title:       "Edit User",
		Description: "Modify the user details below.",
		Resource:    "user_information",
		Fields:      userInformationFields("user."),
		Submit:      &Action{Label: "Save Changes", Method: "updateUser", Color: "success"},
	}

	userTable := Screen{
		Name:        "user-table",
		Title:       "User Management",
		Description: "Manage users including create, update, and delete operations.",
		Resource:    "user_information",
		PageSize:    10,
		Columns: []Column{
			{Name: "id", Label: "ID", Sortable: true, Filterable: true},
			{Name: "name", Label: "Name", Sortable: true, Filterable: true},
			{Name: "email", Label: "Email", Sortable: true, Filterable: true},
			{Name: "phone", Label: "Phone"},
			{Name: "address", Label: "Address"},
			{Name: "created_at", Label: "Created At"},
			{Name: "updated_at", Label: "Updated At"},
		},
		CommandBar: []Action{
			{Label: "Create User", Method: "createUser", Color: "success", Modal: "createUserModal"},
		},
		RowActions: []Action{
			{Label: "Edit", Method: "updateUser", Color: "info", Modal: "editUserModal"},
			{Label: "Delete", Method: "deleteUser", Color: "danger", Confirm: "Are you sure you want to delete this user?"},
		},
		Modals: []Modal{
			{Name: "createUserModal", Title: "Create User", Fields: userInformationFields("")},
			{
				Name:        "editUserModal",
				Title:       "Edit User",
				AsyncMethod: "asyncGetUser",
				Fields: append([]Field{
					{Name: "user.id", Kind: FieldHidden, ValueFrom: "id"},
				}, userInformationFields("user.")...),
			},
		},
	}

	userCards := Screen{
		Name:        "user-cards",
		Title:       "User Management",
		Description: "Manage users including create, update, and delete operations.",
		Resource:    "users",
		Columns: []Column{
			{Name: "id", Label: "ID"},
			{Name: "name", Label: "Name"},
			{Name: "email", Label: "Email"},
			{Name: "created_at", Label: "Created"},
			{Name: "updated_at", Label: "Updated"},
		},
		CommandBar: []Action{
			{Label: "Create User", Method: "createUser", Color: "success", Modal: "createUserModal"},
		},
		RowActions: []Action{
			{Label: "Edit", Method: "updateUser", Color: "info", Modal: "editUserModal"},
			{Label: "Delete", Method: "deleteUser", Color: "danger", Confirm: "Are you sure you want to delete this user?"},
		},
		Modals: []Modal{
			{
				Name:  "createUserModal",
				Title: "Create User",
				Fields: []Field{
					{Name: "name", Label: "Name", Kind: FieldText, Required: true, ValueFrom: "name"},
					{Name: "email", Label: "Email", Kind: FieldText, Required: true, ValueFrom: "email"},
				},
			},
			{
				Name:        "editUserModal",
				Title:       "Edit User",
				AsyncMethod: "asyncGetUser",
				Fields: []Field{
					{Name: "user.id", Kind: FieldHidden, ValueFrom: "id"},
					{Name: "user.name", Label: "Name", Kind: FieldText, Required: true, ValueFrom: "name"},
					{Name: "user.email", Label: "Email", Kind: FieldText, Required: true, ValueFrom: "email"},
				},
			},
		},
	}

	return map[string]Screen{
		createUser.Name: createUser,
		editUser.Name:   editUser,
		userTable.Name:  userTable,
		userCards.Name:  userCards,
	}
}

// Names returns the declared screen names in a stable order.
func Names() []string {
	return []string{"create-user", "edit-user", "user-table", "user-cards"}
}
