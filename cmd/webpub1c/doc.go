// Command webpub1c publishes 1C:Enterprise infobases over the web by
// managing marked blocks in an Apache configuration file, together with
// the per-publication VRD descriptor and directory on disk.
package main
