// Package ncdata opens hierarchical NetCDF4 datasets and exposes their
// variables as plain Go slices.
package ncdata

import (
	"errors"
	"fmt"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/batchatco/go-native-netcdf/netcdf/api"
)

// ErrDataset is returned when a dataset cannot be opened or a variable is
// missing or malformed.
var ErrDataset = errors.New("dataset error")

// FillValueAttribute names the attribute marking missing entries.
const FillValueAttribute = "_FillValue"

// Variable is one variable read from a dataset.
type Variable struct {
	Values any

	// Fill is the variable's _FillValue attribute, nil when it has none.
	Fill any
}

// Dataset is an open, read-only hierarchical dataset.
type Dataset interface {
	// Variable returns the named variable inside group.
	Variable(group, name string) (*Variable, error)

	// Close releases the underlying file.
	Close()
}

// Opener opens datasets by path.
type Opener interface {
	Open(path string) (Dataset, error)
}

// NetCDF opens NetCDF4 files from the local filesystem.
type NetCDF struct{}

// Open opens the NetCDF file at path.
func (NetCDF) Open(path string) (Dataset, error) {
	root, err := netcdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %q: %w", ErrDataset, path, err)
	}
	return &netcdfDataset{path: path, root: root}, nil
}

type netcdfDataset struct {
	path string
	root api.Group
}

func (d *netcdfDataset) Variable(group, name string) (*Variable, error) {
	g, err := d.root.GetGroup(group)
	if err != nil {
		return nil, fmt.Errorf("%w: group %q not found in %q: %w", ErrDataset, group, d.path, err)
	}
	defer g.Close()

	v, err := g.GetVariable(name)
	if err != nil {
		return nil, fmt.Errorf("%w: variable %s/%s not found in %q: %w", ErrDataset, group, name, d.path, err)
	}

	out := &Variable{Values: v.Values}
	if v.Attributes != nil {
		if fill, ok := v.Attributes.Get(FillValueAttribute); ok {
			out.Fill = fill
		}
	}
	return out, nil
}

func (d *netcdfDataset) Close() {
	d.root.Close()
}
