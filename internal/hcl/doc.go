// Package hcl implements the config.Loader interface for HCL sweep
// definition files. A sweep file carries one or more "sweep" blocks whose
// attributes override fields of the base model; attributes left out keep
// their base values.
package hcl
