// Package catalog loads named PARSEC parameter sets from JSON or YAML files
// held in an fs.FS. Each file maps names under an "airfoils" key to either a
// JavaFoil "parsec11" string or explicit fields with angles in degrees. A
// small catalog of reference sections is embedded and exposed via Default.
package catalog
