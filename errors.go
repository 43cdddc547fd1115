package cube

import "fmt"

//Error is the general structure for cube file errors. It follows the error
//convention of the goChem trajectory packages: a message, the offending file
//and a "decoration" slice with the call path, which callers extend with
//Decorate as the error goes up.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("cube file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error
func (err Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the failing operation was associated
func (err Error) FileName() string { return err.filename }

//Format returns the format of the file (always "cube") associated to the error
func (err Error) Format() string { return "cube" }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	UnableToOpen  = "Unable to open file"
	WrongFormat   = "Wrong format in the cube file"
	ShapeMismatch = "Grids don't have the same shape"
)
