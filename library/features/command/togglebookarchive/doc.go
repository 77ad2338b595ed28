// Package togglebookarchive archives an active book or restores an archived one.
package togglebookarchive
