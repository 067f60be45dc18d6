package rpc

import (
	"net"
	"net/rpc"

	"github.com/wfunc/draftserver/draft"
	"github.com/wfunc/draftserver/logger"
	"github.com/wfunc/draftserver/models"
	"github.com/wfunc/draftserver/services"
)

// Server manages the RPC listener.
type Server struct {
	listener net.Listener
	address  string
}

// NewServer creates a new RPC server.
func NewServer(addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &Server{
		listener: listener,
		address:  addr,
	}, nil
}

// Start begins listening for RPC requests.
func (s *Server) Start() {
	logger.Log.Infof("RPC server listening on %s", s.address)
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			// Check if the error is due to the listener being closed.
			if _, ok := err.(*net.OpError); ok {
				logger.Log.Info("RPC server listener closed.")
				return
			}
			logger.Log.Errorf("RPC server accept error: %v", err)
			continue
		}
		go rpc.ServeConn(conn)
	}
}

// Stop closes the RPC listener.
func (s *Server) Stop() {
	if s.listener != nil {
		logger.Log.Info("Stopping RPC server.")
		s.listener.Close()
	}
}

// DraftService exposes read-only draft lookups over net/rpc for admin tooling.
// Live drafts are always served from the spectator projection.
type DraftService struct {
	store   *draft.Store
	archive *services.ArchiveService
}

// NewDraftService creates a new DraftService.
func NewDraftService(store *draft.Store, archive *services.ArchiveService) *DraftService {
	return &DraftService{store: store, archive: archive}
}

type GetDraftArgs struct {
	DraftID string
}

type GetDraftReply struct {
	HostName  string
	GuestName string
	Events    []draft.Event
	Completed bool
}

// GetDraft returns the spectator view of a live draft.
// It must follow the net/rpc signature: exported method, exported arguments,
// second argument is a pointer, return type is error.
func (ds *DraftService) GetDraft(args *GetDraftArgs, reply *GetDraftReply) error {
	d, err := ds.store.Get(args.DraftID)
	if err != nil {
		return err
	}

	host, guest := d.PlayerNames()
	reply.HostName = host
	reply.GuestName = guest
	reply.Events = d.ProjectedEvents(draft.PartySpectator)
	reply.Completed = d.Completed()
	return nil
}

type GetRecordArgs struct {
	DraftID string
}

type GetRecordReply struct {
	Record *models.DraftRecord
}

// GetRecord returns an archived draft record.
func (ds *DraftService) GetRecord(args *GetRecordArgs, reply *GetRecordReply) error {
	if ds.archive == nil {
		return draft.ErrDraftNotFound
	}
	record, err := ds.archive.GetDraftRecord(args.DraftID)
	if err != nil {
		return err
	}
	reply.Record = record
	return nil
}
