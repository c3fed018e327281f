/*
Package xconfig bootstraps Viper for service-check entry points and defines
the explicit Config struct handed to the rest of this module.  Nothing in
this module reads ambient global configuration: callers build a Config here
and pass it down.
*/
package xconfig
