// Package source reads configuration values from files and command-line
// assignments. YAML and JSON documents are read through the yaml.v3 node
// tree, HCL files through hcl/v2; in every format the declaration order of
// top-level keys is kept.
package source
