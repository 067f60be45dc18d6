package server

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/rpc"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/wfunc/draftserver/broadcast"
	"github.com/wfunc/draftserver/draft"
	"github.com/wfunc/draftserver/logger"
	"github.com/wfunc/draftserver/monitor"
	"github.com/wfunc/draftserver/network"
	draftserver_rpc "github.com/wfunc/draftserver/rpc"
	"github.com/wfunc/draftserver/services"
	"github.com/wfunc/draftserver/session"
	"github.com/wfunc/draftserver/timer"
)

const draftIDLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// 所有会收到投影的视角
var viewerRoles = []draft.Party{draft.PartyHost, draft.PartyGuest, draft.PartySpectator}

type DraftServer struct {
	addr           string
	upgrader       websocket.Upgrader
	store          *draft.Store
	sessionManager *session.Manager
	broadcaster    broadcast.Broadcaster
	scheduler      *timer.Scheduler
	archive        *services.ArchiveService
	monitor        *monitor.Monitor
	rpcServer      *draftserver_rpc.Server
	preset         draft.Preset
	revealDelay    time.Duration
	mutex          sync.Mutex
	shutdownChan   chan struct{}
}

func NewDraftServer(addr, rpcAddr string, preset draft.Preset, revealDelay time.Duration, archive *services.ArchiveService, mon *monitor.Monitor) *DraftServer {
	s := &DraftServer{
		addr:           addr,
		store:          draft.NewStore(),
		sessionManager: session.NewManager(),
		scheduler:      timer.NewScheduler(),
		archive:        archive,
		monitor:        mon,
		preset:         preset,
		revealDelay:    revealDelay,
		shutdownChan:   make(chan struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // 允许所有跨域请求
			},
		},
	}

	// 初始化广播器
	s.broadcaster = broadcast.NewRoleBroadcaster(s.sessionManager)

	// 初始化RPC服务器
	rpcServer, err := draftserver_rpc.NewServer(rpcAddr)
	if err != nil {
		logger.Log.Fatalf("Failed to create RPC server: %v", err)
	}
	s.rpcServer = rpcServer

	// 注册RPC服务
	draftService := draftserver_rpc.NewDraftService(s.store, s.archive)
	rpc.Register(draftService)

	return s
}

func (s *DraftServer) Start() error {
	go s.rpcServer.Start()

	http.HandleFunc("/ws", s.handleWebSocket)
	http.HandleFunc("/new", s.handleNewDraft)
	logger.Log.Infof("Draft server listening on %s", s.addr)
	return http.ListenAndServe(s.addr, nil)
}

func (s *DraftServer) Shutdown() {
	close(s.shutdownChan)
	s.scheduler.Stop()
	s.rpcServer.Stop()
}

// handleNewDraft 签发新的选秀令牌，客户端随后带着它连 /ws
func (s *DraftServer) handleNewDraft(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"draft_id": newDraftID()}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// newDraftID 五位字母令牌，引擎只把它当 map 键
func newDraftID() string {
	id := make([]byte, 5)
	for i := range id {
		id[i] = draftIDLetters[rand.Intn(len(draftIDLetters))]
	}
	return string(id)
}

func (s *DraftServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	draftID := r.URL.Query().Get("draft")
	if draftID == "" {
		http.Error(w, "missing draft id", http.StatusBadRequest)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Infof("Failed to upgrade connection: %v", err)
		return
	}
	s.handleConnection(conn, draftID)
}

func (s *DraftServer) handleConnection(conn *websocket.Conn, draftID string) {
	wsConn := network.NewWSConnection(conn)
	sess := session.NewSession(uuid.New().String(), wsConn)

	s.store.Initialize(draftID, s.preset)
	s.assignRole(sess, draftID)
	s.monitor.IncConnectedClients()
	s.monitor.SetActiveDrafts(s.store.Count())

	logger.Log.Infof("New connection from %s, session %s joined draft %s as %s",
		wsConn.RemoteAddr(), sess.GetID(), draftID, sess.GetRole())

	s.sendWelcome(sess)

	defer func() {
		logger.Log.Infof("Connection closed from %s, session ID: %s", wsConn.RemoteAddr(), sess.GetID())
		s.sessionManager.Remove(sess.GetID())
		s.monitor.DecConnectedClients()
		wsConn.Close()
	}()

	for {
		select {
		case <-s.shutdownChan:
			return
		default:
			packet, err := wsConn.ReadPacket()
			if err != nil {
				return
			}
			s.handlePacket(sess, packet)
		}
	}
}

// assignRole 连接引导：第一条连接是主机，第二条是客方，其余都是观众。
// 角色判定与登记必须在同一临界区内，避免两条并发连接都拿到主机。
func (s *DraftServer) assignRole(sess *session.Session, draftID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	role := draft.PartySpectator
	if len(s.sessionManager.GetByRole(draftID, draft.PartyHost)) == 0 {
		role = draft.PartyHost
	} else if len(s.sessionManager.GetByRole(draftID, draft.PartyGuest)) == 0 {
		role = draft.PartyGuest
	}

	sess.Bind(draftID, role)
	s.sessionManager.Add(sess)
}

func (s *DraftServer) sendWelcome(sess *session.Session) {
	host, guest, err := s.store.PlayerNames(sess.DraftID)
	if err != nil {
		logger.Log.Errorf("Draft %s missing right after initialize: %v", sess.DraftID, err)
		return
	}

	resp := map[string]interface{}{
		"draft_id":   sess.DraftID,
		"you_are":    sess.GetRole(),
		"name_host":  host,
		"name_guest": guest,
	}
	data, _ := json.Marshal(resp)
	sess.Send(network.MsgTypeWelcome, data)
}

func (s *DraftServer) handlePacket(sess *session.Session, packet *network.Packet) {
	switch packet.MsgID {
	case network.MsgTypeHeartbeat:
		sess.LastActive = time.Now()
	case network.MsgTypeJoin:
		s.handleJoin(sess, packet)
	case network.MsgTypeAct:
		s.handleAct(sess, packet)
	default:
		logger.Log.Infof("Unknown message type: %d", packet.MsgID)
	}
}

// handleJoin 玩家报名：记录名字并标记就绪，观众没有名字可报
func (s *DraftServer) handleJoin(sess *session.Session, packet *network.Packet) {
	var req map[string]string
	if err := json.Unmarshal(packet.Data, &req); err != nil {
		return
	}
	name := req["name"]
	role := sess.GetRole()

	if role == draft.PartyHost || role == draft.PartyGuest {
		sess.SetName(name)
		if err := s.store.SetPlayerName(sess.DraftID, role, name); err != nil {
			logger.Log.Errorf("SetPlayerName failed for draft %s: %v", sess.DraftID, err)
			return
		}
		s.store.SetReady(sess.DraftID, role)

		joined := map[string]interface{}{"name": name, "player": role}
		data, _ := json.Marshal(joined)
		s.broadcaster.BroadcastToDraft(sess.DraftID, network.MsgTypePlayerJoined, data)
	}

	s.sendDraftState(sess)
}

// sendDraftState 把会话视角下的完整快照发回给该连接
func (s *DraftServer) sendDraftState(sess *session.Session) {
	d, err := s.store.Get(sess.DraftID)
	if err != nil {
		logger.Log.Errorf("Draft %s not found for session %s", sess.DraftID, sess.GetID())
		return
	}

	data, _ := json.Marshal(d.ViewFor(sess.GetRole()))
	sess.Send(network.MsgTypeDraftState, data)
}

func (s *DraftServer) handleAct(sess *session.Session, packet *network.Packet) {
	start := time.Now()
	s.monitor.IncActionsReceived()

	var ev draft.Event
	if err := json.Unmarshal(packet.Data, &ev); err != nil {
		logger.Log.Warnf("Session %s sent malformed action: %v", sess.GetID(), err)
		return
	}
	// 执行者以连接的角色为准，不信任载荷
	ev.Player = sess.GetRole()

	violations, err := s.store.SubmitEvent(sess.DraftID, ev)
	if err != nil {
		logger.Log.Errorf("Draft %s not found for session %s", sess.DraftID, sess.GetID())
		return
	}

	s.sendActResult(sess, violations)
	if len(violations) > 0 {
		return
	}

	s.fanOutLastEvent(sess.DraftID)
	s.scheduleAutoTurn(sess.DraftID)
	s.archiveIfCompleted(sess.DraftID)
	s.monitor.ObserveActionLatency(time.Since(start))
}

func (s *DraftServer) sendActResult(sess *session.Session, violations []draft.Violation) {
	status := "ok"
	names := make([]string, 0, len(violations))
	for _, v := range violations {
		names = append(names, v.String())
	}
	if len(violations) > 0 {
		status = "error"
	}

	resp := map[string]interface{}{"status": status, "violations": names}
	data, _ := json.Marshal(resp)
	sess.Send(network.MsgTypeActResult, data)
}

// fanOutLastEvent 把刚接受的事件分发给三个频道。
// 公开回合三个频道载荷一致，发一份即可；隐藏回合按视角各自投影。
func (s *DraftServer) fanOutLastEvent(draftID string) {
	hidden, err := s.store.LastTurnHidden(draftID)
	if err != nil {
		return
	}

	if !hidden {
		events, err := s.store.ProjectedEvents(draftID, draft.PartySpectator)
		if err != nil || len(events) == 0 {
			return
		}
		data, _ := json.Marshal(events[len(events)-1])
		s.broadcaster.BroadcastToDraft(draftID, network.MsgTypePlayerEvent, data)
		return
	}

	for _, role := range viewerRoles {
		events, err := s.store.ProjectedEvents(draftID, role)
		if err != nil || len(events) == 0 {
			return
		}
		data, _ := json.Marshal(events[len(events)-1])
		s.broadcaster.BroadcastToRole(draftID, role, network.MsgTypePlayerEvent, data)
	}
}

// scheduleAutoTurn 若下一回合由系统执行，在固定延迟后代为落子
func (s *DraftServer) scheduleAutoTurn(draftID string) {
	turn, err := s.store.ExpectedTurn(draftID)
	if err != nil || turn == nil || !turn.Auto {
		return
	}

	d, err := s.store.Get(draftID)
	if err != nil {
		return
	}
	cursor := d.Cursor()

	s.scheduler.After(s.revealDelay, func() {
		s.fireAutoTurn(draftID, cursor)
	})
}

// fireAutoTurn 触发时重新核对游标与回合：调度与人工动作之间存在竞争，
// 过期的预期直接放弃，最终仍以 SubmitEvent 的校验为准
func (s *DraftServer) fireAutoTurn(draftID string, cursor int) {
	d, err := s.store.Get(draftID)
	if err != nil {
		return
	}
	if d.Cursor() != cursor {
		return
	}
	turn := d.ExpectedTurn()
	if turn == nil || !turn.Auto {
		return
	}

	ev := draft.Event{Player: draft.PartyNone, Action: turn.Action}
	violations, err := s.store.SubmitEvent(draftID, ev)
	if err != nil || len(violations) > 0 {
		logger.Log.Infof("Auto turn for draft %s superseded: %v", draftID, violations)
		return
	}

	logger.Log.Infof("Auto turn executed for draft %s at cursor %d", draftID, cursor)

	// 揭示改变既有事件的投影，补发完整快照
	for _, role := range viewerRoles {
		data, _ := json.Marshal(d.ViewFor(role))
		s.broadcaster.BroadcastToRole(draftID, role, network.MsgTypeAdminEvent, data)
	}

	s.scheduleAutoTurn(draftID)
	s.archiveIfCompleted(draftID)
}

func (s *DraftServer) archiveIfCompleted(draftID string) {
	if s.archive == nil {
		return
	}

	d, err := s.store.Get(draftID)
	if err != nil || !d.Completed() {
		return
	}

	if err := s.archive.ArchiveDraft(d); err != nil {
		logger.Log.Errorf("Failed to archive draft %s: %v", draftID, err)
		return
	}
	logger.Log.Infof("Draft %s archived", draftID)
}
