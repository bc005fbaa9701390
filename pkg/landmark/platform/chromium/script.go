package chromium

// installScript adds the in-page half of the adapter: a handle table that
// gives elements stable integer ids, and capture-phase listeners that queue
// key and focus events for Sync to collect. Handle 0 means no element.
//
// When a registry is tracked, route repeats the registry's reachability
// walk so a navigation key with no target keeps its default action. The
// boundary event is fired here, during the real keydown, and its result
// travels with the queued record.
const installScript = `() => {
  if (window.__landmarks) return;
  const handles = new WeakMap();
  const elements = new Map();
  let next = 1;
  const L = {
    keys: [],
    queue: [],
    landmarks: null,
    hidden: '',
    boundary: '',
    id(el) {
      if (!el || el.nodeType !== 1) return 0;
      let id = handles.get(el);
      if (!id) {
        id = next++;
        handles.set(el, id);
        elements.set(id, el);
      }
      return id;
    },
    el(id) {
      return elements.get(id) || null;
    },
    route(from, dir) {
      if (L.landmarks === null) return {handled: true, boundary: null};
      const marks = L.landmarks.map((id) => elements.get(id)).filter(Boolean);
      const n = marks.length;
      if (n === 0) return {handled: false};
      let i = -1;
      for (let el = from; el && i < 0; el = el.parentElement) i = marks.indexOf(el);
      let idx = i < 0 ? (dir > 0 ? 0 : n - 1) : i + dir;
      let boundary = null;
      const wrap = () => {
        if (idx >= 0 && idx < n) return true;
        if (boundary === null) {
          boundary = from.dispatchEvent(new CustomEvent(L.boundary, {
            bubbles: true,
            cancelable: true,
            detail: {direction: dir > 0 ? 'forward' : 'backward'},
          }));
        }
        if (!boundary) return false;
        idx = idx < 0 ? n - 1 : 0;
        return true;
      };
      if (!wrap()) return {handled: false};
      const start = idx;
      while (marks[idx].closest(L.hidden)) {
        idx += dir;
        if (!wrap() || idx === start) return {handled: false};
      }
      return {handled: true, boundary};
    },
  };
  document.addEventListener('keydown', (e) => {
    if (!L.keys.includes(e.key)) return;
    const from = document.activeElement || document.body;
    const route = L.route(from, e.shiftKey ? -1 : 1);
    if (!route.handled) return;
    e.preventDefault();
    e.stopPropagation();
    L.queue.push({
      type: 'keydown',
      key: e.key,
      shift: e.shiftKey,
      alt: e.altKey,
      ctrl: e.ctrlKey,
      meta: e.metaKey,
      target: L.id(from),
      boundary: route.boundary,
    });
  }, true);
  document.addEventListener('focusin', (e) => {
    L.queue.push({type: 'focusin', target: L.id(e.target), related: L.id(e.relatedTarget)});
  }, true);
  document.addEventListener('focusout', (e) => {
    L.queue.push({type: 'focusout', target: L.id(e.target), related: L.id(e.relatedTarget)});
  }, true);
  window.__landmarks = L;
}`

const (
	jsSetKeys = `(keys) => { window.__landmarks.keys = keys }`

	jsDrain = `(keys, landmarks, hidden, boundary) => {
  const L = window.__landmarks;
  L.keys = keys;
  L.landmarks = landmarks;
  L.hidden = hidden;
  L.boundary = boundary;
  return L.queue.splice(0);
}`

	jsActive = `() => window.__landmarks.id(document.activeElement)`

	jsBody = `() => window.__landmarks.id(document.body)`

	jsCompare = `(a, b) => {
  const L = window.__landmarks;
  const x = L.el(a), y = L.el(b);
  if (!x || !y) return 1;
  return x.compareDocumentPosition(y);
}`

	jsParent = `(id) => {
  const L = window.__landmarks;
  const el = L.el(id);
  return el ? L.id(el.parentElement) : 0;
}`

	jsConnected = `(id) => {
  const el = window.__landmarks.el(id);
  return !!el && el.isConnected;
}`

	jsHidden = `(id, selector) => {
  const el = window.__landmarks.el(id);
  return !el || !!el.closest(selector);
}`

	jsFocus = `(id) => {
  const el = window.__landmarks.el(id);
  if (el && el.isConnected) el.focus();
}`

	jsBlur = `() => {
  const el = document.activeElement;
  if (el && el !== document.body) el.blur();
}`

	jsBoundary = `(id, type, direction) => {
  const el = window.__landmarks.el(id) || document;
  return el.dispatchEvent(new CustomEvent(type, {
    bubbles: true,
    cancelable: true,
    detail: {direction},
  }));
}`

	jsQuery = `(selector) => Array.from(document.querySelectorAll(selector)).map((el) => window.__landmarks.id(el))`

	jsDiscover = `(selector, sectioning) => {
  const L = window.__landmarks;
  return Array.from(document.querySelectorAll(selector)).map((el) => ({
    handle: L.id(el),
    tag: el.localName,
    role: el.getAttribute('role') || '',
    hasRole: el.hasAttribute('role'),
    label: (el.getAttribute('aria-label') || '').trim(),
    labelledBy: (el.getAttribute('aria-labelledby') || '').trim(),
    named: el.hasAttribute('aria-label') || el.hasAttribute('aria-labelledby') || el.hasAttribute('title'),
    scoped: !!(el.parentElement && el.parentElement.closest(sectioning)),
  }));
}`

	jsApply = `(id, pairs) => {
  const el = window.__landmarks.el(id);
  if (!el) return;
  el.removeAttribute('tabindex');
  for (const [name, value] of pairs) el.setAttribute(name, value);
}`

	jsDescribe = `(id) => {
  const el = window.__landmarks.el(id);
  if (!el) return '<detached>';
  let s = el.localName;
  if (el.id) s += '#' + el.id;
  const label = el.getAttribute('aria-label');
  if (label) s += ' "' + label + '"';
  return s;
}`
)
