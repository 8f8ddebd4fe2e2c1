/*
Package oracle compiles user defined JavaScript functionals and evaluates
them against read-only views of space vectors. A functional is compiled once
and can then be called any number of times; evaluation is serialized per
functional since the underlying VM is not safe for concurrent use.
*/
package oracle
